package parser

import (
	"github.com/cybertec-plsql/plsqlcst/syntax"
	"github.com/cybertec-plsql/plsqlcst/token"
)

// constraintStarts reports whether kind can begin a constraint
// definition, inline or out-of-line.
func constraintStarts(kind token.Kind) bool {
	switch kind {
	case token.ConstraintKw, token.PrimaryKw, token.UniqueKw, token.ForeignKw,
		token.CheckKw, token.NotKw, token.ScopeKw, token.WithKw, token.RefKw:
		return true
	}
	return false
}

// parseConstraint parses one constraint, named or not: PRIMARY KEY,
// UNIQUE, FOREIGN KEY ... REFERENCES, CHECK, NOT NULL (inline only), and
// the Oracle-specific object-column qualifiers SCOPE IS and WITH ROWID,
// followed by any of the deferrable/rely/enable/validate/exceptions-into
// tail clauses.
func (p *Parser) parseConstraint() {
	p.start(syntax.Constraint)
	if p.eat(token.ConstraintKw) {
		p.parseIdent(1)
	}

	switch {
	case p.at(token.PrimaryKw):
		p.bumpAny()
		p.expect(token.KeyKw)
		p.parseColumnRefList()
	case p.at(token.UniqueKw):
		p.bumpAny()
		p.parseColumnRefList()
	case p.at(token.ForeignKw):
		p.bumpAny()
		p.expect(token.KeyKw)
		p.parseColumnRefList()
		p.expect(token.ReferencesKw)
		p.parseIdentGroup(0)
		if p.at(token.LParen) {
			p.parseColumnRefList()
		}
	case p.at(token.CheckKw):
		p.bumpAny()
		p.expect(token.LParen)
		p.parseExpr()
		p.expect(token.RParen)
	case p.at(token.NotKw):
		p.bumpAny()
		p.expect(token.NullKw)
	case p.at(token.ScopeKw):
		p.bumpAny()
		p.expect(token.IsKw)
		p.parseIdentGroup(0)
	case p.at(token.WithKw):
		p.bumpAny()
		p.expect(token.RowidKw)
	case p.at(token.RefKw):
		p.bumpAny()
		p.parseIdent(1)
		p.expect(token.ReferencesKw)
		p.parseIdentGroup(0)
	default:
		p.errorAt(ExpectedConstraint)
	}

	p.parseConstraintTail()
	p.finish()
}

// parseConstraintTail consumes the keyword-only qualifiers that may
// trail any constraint in any order: DEFERRABLE/NOT DEFERRABLE,
// INITIALLY DEFERRED/IMMEDIATE, RELY/NORELY, ENABLE/DISABLE,
// VALIDATE/NOVALIDATE, and EXCEPTIONS INTO table.
func (p *Parser) parseConstraintTail() {
	p.safeLoop(func() bool {
		switch {
		case p.eatOneOf(token.DeferrableKw):
		case p.at(token.NotKw) && p.nth(1) == token.DeferrableKw:
			p.bumpAny()
			p.bumpAny()
		case p.eat(token.InitiallyKw):
			p.eatOneOf(token.DeferredKw, token.ImmediateKw)
		case p.eatOneOf(token.RelyKw, token.NorelyKw, token.EnableKw, token.DisableKw, token.ValidateKw, token.NovalidateKw):
		case p.at(token.ExceptionsKw) && p.nth(1) == token.IntoKw:
			p.bumpAny()
			p.bumpAny()
			p.parseIdentGroup(0)
		default:
			return false
		}
		return true
	})
}

// parseColumnRefList parses a parenthesised, comma-separated list of
// bare column names, as used by PRIMARY KEY/UNIQUE/FOREIGN KEY.
func (p *Parser) parseColumnRefList() {
	p.start(syntax.ColumnDefList)
	p.expect(token.LParen)
	p.safeLoop(func() bool {
		p.parseIdent(1)
		return p.eat(token.Comma)
	})
	p.expect(token.RParen)
	p.finish()
}
