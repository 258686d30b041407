package parser

import (
	"github.com/cybertec-plsql/plsqlcst/syntax"
	"github.com/cybertec-plsql/plsqlcst/token"
)

// parseUdtBody parses the shape following TYPE name IS (or CREATE [OR
// REPLACE] TYPE name IS/AS): an object, a collection (TABLE OF or
// VARRAY), a record, or a REF CURSOR. Each shape is wrapped in its own
// dedicated node, all valid children of the enclosing Udt node.
func (p *Parser) parseUdtBody() {
	switch {
	case p.at(token.ObjectKw):
		p.parseObjectType()
	case p.at(token.TableKw) && p.nth(1) == token.OfKw:
		p.parseCollectionType()
	case p.at(token.VarrayKw):
		p.parseCollectionType()
	case p.at(token.VarraysKw):
		p.parseCollectionType()
	case p.at(token.RecordKw):
		p.parseRecordType()
	case p.at(token.RefKw) && p.nth(1) == token.CursorKw:
		p.parseRefCursorType()
	case p.atOneOf(token.LanguageKw, token.ExternalKw):
		p.parseCallSpec()
	default:
		p.errorHere(Unimplemented, "type body")
	}
}

// parseColumnDefList parses the parenthesised `(name datatype, ...)`
// member list shared by OBJECT and RECORD bodies.
func (p *Parser) parseColumnDefList() {
	p.start(syntax.ColumnDefList)
	p.expect(token.LParen)
	p.safeLoop(func() bool {
		p.start(syntax.ColumnDef)
		p.parseIdent(1)
		p.parseDatatype()
		p.finish()
		return p.eat(token.Comma)
	})
	p.expect(token.RParen)
	p.finish()
}

func (p *Parser) parseObjectType() {
	p.start(syntax.ObjectType)
	p.expect(token.ObjectKw)
	p.parseColumnDefList()
	p.finish()
}

func (p *Parser) parseRecordType() {
	p.start(syntax.RecordType)
	p.expect(token.RecordKw)
	p.parseColumnDefList()
	p.finish()
}

// parseCollectionType parses `TABLE OF datatype [NOT NULL]` and `VARRAY
// (limit) OF datatype [NOT NULL]`.
func (p *Parser) parseCollectionType() {
	p.start(syntax.CollectionType)
	switch {
	case p.eat(token.TableKw):
		p.expect(token.OfKw)
	default:
		p.eatOneOf(token.VarrayKw, token.VarraysKw)
		if p.at(token.LParen) {
			p.bumpAny()
			p.expect(token.Integer)
			p.expect(token.RParen)
		}
		p.expect(token.OfKw)
	}
	p.parseDatatype()
	if p.at(token.NotKw) && p.nth(1) == token.NullKw {
		p.bumpAny()
		p.bumpAny()
	}
	p.finish()
}

// parseRefCursorType parses `REF CURSOR [RETURN datatype]`.
func (p *Parser) parseRefCursorType() {
	p.start(syntax.RefCursorType)
	p.expect(token.RefKw)
	p.expect(token.CursorKw)
	if p.eat(token.ReturnKw) {
		p.parseDatatype()
	}
	p.finish()
}

// parseCallSpec parses a call specification: `LANGUAGE JAVA NAME
// 'literal'` or `LANGUAGE C [NAME ident] [LIBRARY ident] ...`, recorded
// generically as a CallSpec node since the external-language payload is
// opaque text the grammar has no reason to interpret further.
func (p *Parser) parseCallSpec() {
	p.start(syntax.CallSpec)
	p.eat(token.ExternalKw)
	p.expect(token.LanguageKw)
	p.safeLoop(func() bool {
		switch p.current() {
		case token.Semicolon, token.EndKw, token.Eof:
			return false
		}
		p.bumpAny()
		return true
	})
	p.finish()
}
