package parser

import (
	"github.com/cybertec-plsql/plsqlcst/syntax"
	"github.com/cybertec-plsql/plsqlcst/token"
)

// parseIdentOrFunctionInvocation parses a (possibly qualified) identifier
// and, if a '(' immediately follows, extends it into a FunctionInvocation
// covering the identifier and its parenthesised argument list. This is
// also the production statement-level procedure calls reuse: a bare
// function invocation followed by ';' is a procedure call.
func (p *Parser) parseIdentOrFunctionInvocation() {
	cp := p.checkpoint()
	p.parseIdentGroup(0)
	if p.current() != token.LParen {
		return
	}
	p.startNodeAt(cp, syntax.FunctionInvocation)
	p.parseArgumentList()
	p.finish()
}

// parseArgumentList parses a parenthesised, comma-separated, possibly
// empty list of expressions.
func (p *Parser) parseArgumentList() {
	p.start(syntax.ArgumentList)
	p.expect(token.LParen)
	if p.current() != token.RParen {
		p.safeLoop(func() bool {
			p.skipTrivia() // whitespace after a comma belongs to the list
			p.start(syntax.Argument)
			p.parseExpr()
			p.finish()
			if !p.eat(token.Comma) {
				return false
			}
			return true
		})
	}
	p.expect(token.RParen)
	p.finish()
}
