package parser

import (
	"github.com/cybertec-plsql/plsqlcst/syntax"
	"github.com/cybertec-plsql/plsqlcst/token"
)

var builtinDatatypeKeywords = []token.Kind{
	token.Varchar2Kw, token.VarcharKw, token.Nvarchar2Kw, token.NcharKw, token.CharKw, token.CharacterKw,
	token.NumberKw, token.IntegerKw, token.IntKw, token.SmallintKw, token.DecimalKw, token.DecKw, token.NumericKw,
	token.FloatKw, token.RealKw, token.DoubleKw, token.BinaryFloatKw, token.BinaryDoubleKw, token.BinaryIntegerKw,
	token.PlsIntegerKw, token.BooleanKw,
	token.DateKw, token.TimestampKw, token.IntervalKw,
	token.RawKw, token.LongKw, token.BlobKw, token.ClobKw, token.NclobKw, token.BfileKw,
	token.RowidKw, token.UrowidKw, token.XmltypeKw, token.AnyschemaKw,
	token.RefKw, token.StringKw,
}

func isBuiltinDatatypeStart(k token.Kind) bool {
	for _, bk := range builtinDatatypeKeywords {
		if k == bk {
			return true
		}
	}
	return false
}

// parseDatatype parses either a %TYPE/%ROWTYPE reference to a prior
// declaration, a REF CURSOR, or a built-in scalar type optionally
// carrying length/precision/scale and CHARACTER SET/byte-vs-char
// qualifiers. Anything it cannot place becomes an identifier (a
// user-defined or package-qualified type name), which keeps the
// production total over any token stream.
func (p *Parser) parseDatatype() {
	p.start(syntax.Datatype)

	switch {
	case p.at(token.RefKw) && p.nth(1) == token.CursorKw:
		p.bumpAny()
		p.bumpAny()
		p.eat(token.ReturnKw)
		if identComponent(p.current()) {
			p.parseIdentGroup(0)
		}
	case isBuiltinDatatypeStart(p.current()):
		p.bumpAny()
		if p.at(token.LParen) {
			p.parseTypeModifiers()
		}
		if p.at(token.CharacterKw) && p.nth(1) == token.SetKw {
			p.bumpAny()
			p.bumpAny()
			p.parseIdent(1)
		}
	default:
		p.parseIdentGroup(0)
	}

	p.finish()
}

// parseTypeModifiers parses the parenthesised length/precision[,scale]
// that follows a scalar datatype keyword, including the trailing BYTE or
// CHAR qualifier VARCHAR2 and friends allow.
func (p *Parser) parseTypeModifiers() {
	p.bumpAny() // (
	p.expect(token.Integer)
	if p.eat(token.Comma) {
		p.expect(token.Integer)
	}
	p.eatOneOf(token.ByteKw, token.CharKw)
	p.expect(token.RParen)
}
