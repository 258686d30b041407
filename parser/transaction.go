package parser

import (
	"github.com/cybertec-plsql/plsqlcst/syntax"
	"github.com/cybertec-plsql/plsqlcst/token"
)

// parseTransactionStmt parses COMMIT [WORK], ROLLBACK [WORK] [TO
// [SAVEPOINT] name], SAVEPOINT name, and SET TRANSACTION ... , all as
// one TransactionStmt node distinguished only by their leading keyword.
func (p *Parser) parseTransactionStmt() {
	p.start(syntax.TransactionStmt)
	switch p.current() {
	case token.CommitKw:
		p.bumpAny()
		p.eat(token.WorkKw)
	case token.RollbackKw:
		p.bumpAny()
		p.eat(token.WorkKw)
		if p.eat(token.ToKw) {
			p.eat(token.SavepointKw)
			p.parseIdent(1)
		}
	case token.SavepointKw:
		p.bumpAny()
		p.parseIdent(1)
	case token.SetKw:
		p.bumpAny()
		p.expect(token.TransactionKw)
		p.safeLoop(func() bool {
			if !identComponent(p.current()) {
				return false
			}
			p.bumpAny()
			return identComponent(p.current())
		})
	default:
		p.errorAt(ExpectedStatement)
	}
	p.expect(token.Semicolon)
	p.finish()
}
