package parser

import (
	"github.com/cybertec-plsql/plsqlcst/syntax"
	"github.com/cybertec-plsql/plsqlcst/token"
)

// parseInsertStmt parses the single-table form `INSERT INTO table
// [(cols)] VALUES (exprs) ;`.
func (p *Parser) parseInsertStmt() {
	p.start(syntax.InsertStmt)
	p.expect(token.InsertKw)
	p.expect(token.IntoKw)
	p.parseIdentGroup(0)

	if p.at(token.LParen) {
		p.start(syntax.ColumnDefList)
		p.bumpAny()
		p.safeLoop(func() bool {
			p.parseIdent(1)
			return p.eat(token.Comma)
		})
		p.expect(token.RParen)
		p.finish()
	}

	if p.at(token.SelectKw) {
		p.parseSelectStmt(false)
	} else {
		p.expect(token.ValuesKw)
		p.expect(token.LParen)
		p.safeLoop(func() bool {
			p.parseExpr()
			return p.eat(token.Comma)
		})
		p.expect(token.RParen)
	}

	p.expect(token.Semicolon)
	p.finish()
}

// parseDeleteStmt parses `DELETE FROM table [WHERE cond] ;`.
func (p *Parser) parseDeleteStmt() {
	p.start(syntax.DeleteStmt)
	p.expect(token.DeleteKw)
	p.expect(token.FromKw)
	p.parseIdentGroup(0)
	p.parseWhereClause()
	p.expect(token.Semicolon)
	p.finish()
}

// parseUpdateStmt parses `UPDATE table SET set_clause [WHERE cond] ;`.
func (p *Parser) parseUpdateStmt() {
	p.start(syntax.UpdateStmt)
	p.expect(token.UpdateKw)
	p.parseIdentGroup(0)
	p.parseSetClause()
	p.parseWhereClause()
	p.expect(token.Semicolon)
	p.finish()
}

// parseSetClause parses `SET target = expr {, target = expr}*`. The
// assignment itself is left to parseExpr's own handling of '=' as a
// ComparisonOp, matching how the grammar represents it.
func (p *Parser) parseSetClause() {
	p.start(syntax.SetClause)
	p.expect(token.SetKw)
	p.safeLoop(func() bool {
		p.parseExpr()
		if p.at(token.WhereKw) {
			return false
		}
		return p.eat(token.Comma)
	})
	p.finish()
}
