package parser

import (
	"github.com/cybertec-plsql/plsqlcst/syntax"
	"github.com/cybertec-plsql/plsqlcst/token"
)

// parseSequence parses `CREATE SEQUENCE name` followed by any of
// INCREMENT BY/START WITH/MAXVALUE|NOMAXVALUE/MINVALUE|NOMINVALUE/
// CYCLE|NOCYCLE/CACHE|NOCACHE/ORDER|NOORDER in any order.
func (p *Parser) parseSequence() {
	p.start(syntax.Sequence)
	p.parseCreateOrReplacePrefix()
	p.expect(token.SequenceKw)
	p.parseIdentGroup(0)

	p.safeLoop(func() bool {
		switch {
		case p.eat(token.IncrementKw):
			p.expect(token.ByKw)
			p.parseExpr()
		case p.eat(token.StartKw):
			p.expect(token.WithKw)
			p.parseExpr()
		case p.eatOneOf(token.MaxvalueKw, token.MinvalueKw):
			p.parseExpr()
		case p.eatOneOf(token.NomaxvalueKw, token.NominvalueKw, token.CycleKw, token.NocycleKw, token.NocacheKw, token.OrderKw, token.NoorderKw):
		case p.eat(token.CacheKw):
			p.parseExpr()
		default:
			return false
		}
		return true
	})

	p.expect(token.Semicolon)
	p.finish()
}
