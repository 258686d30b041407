package parser

import (
	"github.com/cybertec-plsql/plsqlcst/syntax"
	"github.com/cybertec-plsql/plsqlcst/token"
)

// parseTable parses `CREATE TABLE name (column_def {, column_def |
// out-of-line constraint}*) ;`. Each column may carry its own inline
// constraints, which parseColumnDef collects directly under the column.
func (p *Parser) parseTable() {
	p.start(syntax.Table)
	p.parseCreateOrReplacePrefix()
	p.expect(token.TableKw)
	p.parseIdentGroup(0)

	p.start(syntax.ColumnDefList)
	p.expect(token.LParen)
	p.safeLoop(func() bool {
		if constraintStarts(p.current()) {
			p.parseConstraint()
		} else {
			p.parseColumnDef()
		}
		return p.eat(token.Comma)
	})
	p.expect(token.RParen)
	p.finish()

	p.expect(token.Semicolon)
	p.finish()
}

// parseColumnDef parses one `name datatype [DEFAULT expr] [inline
// constraint]*` item inside a CREATE TABLE column list.
func (p *Parser) parseColumnDef() {
	p.start(syntax.ColumnDef)
	p.parseIdent(1)
	p.parseDatatype()
	if p.eat(token.DefaultKw) {
		p.parseExpr()
	}
	p.safeLoop(func() bool {
		if !constraintStarts(p.current()) {
			return false
		}
		p.parseConstraint()
		return constraintStarts(p.current())
	})
	p.finish()
}
