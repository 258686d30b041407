package parser

import (
	"github.com/cybertec-plsql/plsqlcst/syntax"
	"github.com/cybertec-plsql/plsqlcst/token"
)

// parseView parses `CREATE [OR REPLACE] [FORCE] VIEW name [(columns)]
// AS select_stmt [WITH {CHECK OPTION|READ ONLY}] ;`.
func (p *Parser) parseView() {
	p.start(syntax.View)
	p.parseCreateOrReplacePrefix()
	p.eat(token.ForceKw)
	p.expect(token.ViewKw)
	p.parseIdentGroup(0)

	if p.at(token.LParen) {
		p.parseColumnRefList()
	}

	p.expect(token.AsKw)
	p.parseSelectStmt(false)

	if p.eat(token.WithKw) {
		switch {
		case p.eat(token.CheckKw):
			p.expect(token.OptionKw)
		case p.eat(token.ReadKw):
			p.expect(token.OnlyKw)
		}
	}

	p.expect(token.Semicolon)
	p.finish()
}
