package parser

import (
	"github.com/cybertec-plsql/plsqlcst/syntax"
	"github.com/cybertec-plsql/plsqlcst/token"
)

// parseDeclareSection parses the sequence of item declarations preceding
// a block's BEGIN: variables and constants, cursors, PRAGMA directives,
// TYPE and SUBTYPE definitions, and nested procedure/function
// declarations or bodies. The leading DECLARE keyword, present for
// top-level anonymous blocks but not for package/subprogram bodies
// (which reach here straight from IS/AS), is consumed here if present.
func (p *Parser) parseDeclareSection() {
	p.start(syntax.DeclareSection)
	p.eat(token.DeclareKw)

	p.safeLoop(func() bool {
		switch p.current() {
		case token.BeginKw, token.EndKw, token.Eof:
			return false
		case token.CursorKw:
			p.parseCursorDecl()
		case token.TypeKw:
			p.parseTypeDecl()
		case token.SubtypeKw:
			p.parseSubtypeDecl()
		case token.ProcedureKw:
			p.parseProcedure()
		case token.FunctionKw:
			p.parseFunction()
		case token.PragmaKw:
			p.parsePragma()
		default:
			if identComponent(p.current()) {
				p.parseVariableDecl()
			} else {
				p.errorAt(ExpectedIdent)
				if p.current() != token.Eof {
					p.bumpAny()
				}
			}
		}
		return true
	})

	p.finish()
}

// parseVariableDecl parses one `name [CONSTANT] datatype [NOT NULL]
// [:= expr | DEFAULT expr] ;` item, wrapped in a VariableDecl node and
// additionally collected into an enclosing VariableDeclList so
// consecutive declarations read as one logical group the way the
// catalogue's variable_decl_list node intends.
func (p *Parser) parseVariableDecl() {
	p.start(syntax.VariableDeclList)
	p.safeLoop(func() bool {
		if !identComponent(p.current()) {
			return false
		}
		p.parseOneVariableDecl()
		switch p.current() {
		case token.CursorKw, token.TypeKw, token.SubtypeKw, token.ProcedureKw,
			token.FunctionKw, token.PragmaKw, token.BeginKw, token.EndKw, token.Eof:
			return false
		}
		return identComponent(p.current())
	})
	p.finish()
}

func (p *Parser) parseOneVariableDecl() {
	p.start(syntax.VariableDecl)
	p.parseIdent(1)
	p.eat(token.ConstantKw)
	p.parseDatatype()
	if p.at(token.NotKw) && p.nth(1) == token.NullKw {
		p.bumpAny()
		p.bumpAny()
	}
	if p.at(token.Assign) {
		p.bumpAnyMap(syntax.Assign)
		p.parseExpr()
	} else if p.eat(token.DefaultKw) {
		p.parseExpr()
	}
	p.expect(token.Semicolon)
	p.finish()
}

// parseCursorDecl parses `CURSOR name [(param_list)] [RETURN datatype]
// IS select_stmt ;`, recorded as a CursorDecl node.
func (p *Parser) parseCursorDecl() {
	p.start(syntax.CursorDecl)
	p.expect(token.CursorKw)
	p.parseIdent(1)
	if p.at(token.LParen) {
		p.parseParamList()
	}
	if p.eat(token.ReturnKw) {
		p.parseDatatype()
	}
	p.expect(token.IsKw)
	p.parseSelectStmt(false)
	p.expect(token.Semicolon)
	p.finish()
}

// parseParamList parses a parenthesised, comma-separated list of cursor
// or subprogram parameters: `name [IN|OUT|IN OUT] [NOCOPY] datatype
// [{:=|DEFAULT} expr]`.
func (p *Parser) parseParamList() {
	p.start(syntax.ParamList)
	p.expect(token.LParen)
	if p.current() != token.RParen {
		p.safeLoop(func() bool {
			p.parseParam()
			if !p.eat(token.Comma) {
				return false
			}
			return true
		})
	}
	p.expect(token.RParen)
	p.finish()
}

func (p *Parser) parseParam() {
	p.start(syntax.Param)
	p.parseIdent(1)
	p.eat(token.InKw)
	p.eat(token.OutKw)
	p.eat(token.NocopyKw)
	p.parseDatatype()
	if p.eat(token.DefaultKw) {
		p.parseExpr()
	} else if p.at(token.Assign) {
		p.bumpAnyMap(syntax.Assign)
		p.parseExpr()
	}
	p.finish()
}

// parseTypeDecl parses `TYPE name IS <udt shape> ;`, deferring the
// shape-specific grammar to parseUdtBody.
func (p *Parser) parseTypeDecl() {
	p.start(syntax.Udt)
	p.expect(token.TypeKw)
	p.parseIdent(1)
	p.expect(token.IsKw)
	p.parseUdtBody()
	p.expect(token.Semicolon)
	p.finish()
}

// parseSubtypeDecl parses `SUBTYPE name IS datatype [NOT NULL] [RANGE
// low..high] ;`.
func (p *Parser) parseSubtypeDecl() {
	p.start(syntax.SubtypeDecl)
	p.expect(token.SubtypeKw)
	p.parseIdent(1)
	p.expect(token.IsKw)
	p.parseDatatype()
	if p.at(token.NotKw) && p.nth(1) == token.NullKw {
		p.bumpAny()
		p.bumpAny()
	}
	if p.eat(token.RangeKw) {
		p.start(syntax.Range)
		p.parseExpr()
		p.expect(token.DoubleDot)
		p.parseExpr()
		p.finish()
	}
	p.expect(token.Semicolon)
	p.finish()
}

// parsePragma parses `PRAGMA name [(args)] ;` generically: this covers
// AUTONOMOUS_TRANSACTION, EXCEPTION_INIT and the rest without needing a
// dedicated node per pragma name.
func (p *Parser) parsePragma() {
	p.start(syntax.Pragma)
	p.expect(token.PragmaKw)
	p.parseIdent(1)
	if p.at(token.LParen) {
		p.parseArgumentList()
	}
	p.expect(token.Semicolon)
	p.finish()
}
