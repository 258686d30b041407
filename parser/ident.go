package parser

import (
	"github.com/cybertec-plsql/plsqlcst/syntax"
	"github.com/cybertec-plsql/plsqlcst/token"
)

// identComponent reports whether kind may stand as one dot-separated part
// of an identifier: the three literal identifier-shaped token kinds, or
// any keyword admitted by the permissive keywords-as-identifiers rule.
func identComponent(kind token.Kind) bool {
	return kind.IsIdent()
}

// parseIdent accepts 1..max dot-separated components (max <= 0 means no
// limit) and attaches them as bare leaf tokens of whatever node is open;
// it opens no node of its own and does not look at a trailing %TYPE or
// %ROWTYPE. If the current token cannot start an identifier it records
// ExpectedIdent and consumes nothing. Callers that want an IdentGroup
// node and %TYPE/%ROWTYPE handling use parseIdentGroup instead.
func (p *Parser) parseIdent(max int) {
	if !identComponent(p.current()) {
		p.errorAt(ExpectedIdent)
		return
	}
	p.bumpAny()
	n := 1
	// kindAhead is nth without the leading skipTrivia, so whitespace after
	// the last component is not pulled into the caller's open node.
	kindAhead := func(k int) token.Kind {
		for i := len(p.buf) - 1; i >= 0; i-- {
			if p.buf[i].Type.IsTrivia() {
				continue
			}
			if k == 0 {
				return p.buf[i].Type
			}
			k--
		}
		return token.Eof
	}
	for (max <= 0 || n < max) && kindAhead(0) == token.Dot && identComponent(kindAhead(1)) {
		p.bumpAny() // dot
		p.bumpAny() // next component
		n++
	}
}

// parseIdentGroup wraps parseIdent in an IdentGroup node and attaches a
// trailing %TYPE/%ROWTYPE attribute, if present, as a TypeAttribute node
// enclosing the whole group.
func (p *Parser) parseIdentGroup(max int) {
	cp := p.checkpoint()
	p.start(syntax.IdentGroup)
	p.parseIdent(max)
	p.finish()

	if p.current() == token.Percentage {
		p.startNodeAt(cp, syntax.TypeAttribute)
		p.bumpAny() // %
		p.expectOneOf(token.TypeKw, token.RowtypeKw)
		p.finish()
	}
}
