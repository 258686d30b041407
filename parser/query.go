package parser

import (
	"github.com/cybertec-plsql/plsqlcst/syntax"
	"github.com/cybertec-plsql/plsqlcst/token"
)

// parseSelectIntoStmt is the statement-position entry for SELECT: PL/SQL
// requires an INTO clause here (unlike a cursor's or subquery's SELECT),
// so a missing one is recorded as ExpectedToken(Into) without aborting
// the rest of the statement — see scenario 5.
func (p *Parser) parseSelectIntoStmt() {
	p.parseSelectStmt(true)
	p.expect(token.Semicolon)
}

// parseSelectStmt parses `SELECT [DISTINCT] select_clause [INTO
// ident_list] FROM from_clause [WHERE cond] [CONNECT BY cond [START
// WITH cond]] [GROUP BY ...] [ORDER BY ...]`, wrapped in a SelectStmt
// node. It does not consume a trailing ';' — callers that need one
// (statement position) add it themselves, while callers embedding a
// SELECT inside another construct (cursor declarations, OPEN ... FOR,
// subqueries) do not. requireInto is true only at statement position,
// where PL/SQL mandates INTO; cursor and OPEN...FOR selects pass false
// since INTO is never valid there and would otherwise produce a
// spurious error on every such query.
func (p *Parser) parseSelectStmt(requireInto bool) {
	p.start(syntax.SelectStmt)
	p.expect(token.SelectKw)
	p.eat(token.DistinctKw)

	p.start(syntax.SelectClause)
	p.safeLoop(func() bool {
		if p.at(token.Asterisk) {
			p.bumpAny()
		} else {
			p.start(syntax.ColumnExpr)
			p.parseExpr()
			if p.eat(token.AsKw) {
				p.parseIdent(1)
			} else if identComponent(p.current()) && !statementKeywordFollows(p.current()) {
				p.parseIdent(1)
			}
			p.finish()
		}
		return p.eat(token.Comma)
	})
	p.finish()

	if p.eat(token.IntoKw) {
		p.start(syntax.IntoClause)
		p.safeLoop(func() bool {
			p.parseIdentGroup(0)
			return p.eat(token.Comma)
		})
		p.finish()
	} else if requireInto {
		p.expect(token.IntoKw)
	}

	p.parseFromClause()

	p.parseWhereClause()

	if p.at(token.ConnectKw) && p.nth(1) == token.ByKw {
		p.start(syntax.Connect)
		p.bumpAny()
		p.bumpAny()
		p.parseExpr()
		p.finish()
	}
	if p.at(token.StartKw) && p.nth(1) == token.WithKw {
		p.bumpAny()
		p.bumpAny()
		p.parseExpr()
	}

	if p.at(token.GroupKw) {
		p.start(syntax.GroupByClause)
		p.bumpAny()
		p.expect(token.ByKw)
		p.safeLoop(func() bool {
			p.parseExpr()
			return p.eat(token.Comma)
		})
		p.finish()
	}

	if p.at(token.OrderKw) {
		p.start(syntax.OrderByClause)
		p.bumpAny()
		p.expect(token.ByKw)
		p.safeLoop(func() bool {
			p.parseExpr()
			p.eatOneOf(token.AscKw, token.DescKw)
			return p.eat(token.Comma)
		})
		p.finish()
	}

	p.finish()
}

// statementKeywordFollows reports whether kind is one of the keywords
// that can legally follow a column expression without being the
// expression's bare-word alias, so the optional-alias heuristic in
// parseSelectStmt does not swallow FROM or a following clause keyword.
func statementKeywordFollows(kind token.Kind) bool {
	switch kind {
	case token.FromKw, token.IntoKw, token.WhereKw, token.GroupKw, token.OrderKw:
		return true
	}
	return false
}

// parseWhereClause parses an optional `WHERE cond`, shared by SELECT,
// UPDATE and DELETE.
func (p *Parser) parseWhereClause() {
	if p.eat(token.WhereKw) {
		p.start(syntax.WhereClause)
		p.parseExpr()
		p.finish()
	}
}

// parseFromClause parses `FROM table_ref {, table_ref | join_clause}*`.
func (p *Parser) parseFromClause() {
	p.start(syntax.FromClause)
	p.expect(token.FromKw)
	p.safeLoop(func() bool {
		p.parseTableRef()
		if p.atOneOf(token.JoinKw, token.InnerKw, token.LeftKw, token.RightKw, token.FullKw) {
			p.parseJoinClause()
			return p.atOneOf(token.JoinKw, token.InnerKw, token.LeftKw, token.RightKw, token.FullKw)
		}
		return p.eat(token.Comma)
	})
	p.finish()
}

func (p *Parser) parseTableRef() {
	p.start(syntax.TableRef)
	p.parseIdentGroup(0)
	if p.eat(token.AsKw) {
		p.parseIdent(1)
	} else if identComponent(p.current()) && !statementKeywordFollows(p.current()) &&
		!p.atOneOf(token.JoinKw, token.InnerKw, token.LeftKw, token.RightKw, token.FullKw, token.OnKw) {
		p.parseIdent(1)
	}
	p.finish()
}

// parseJoinClause parses one `[INNER|LEFT|RIGHT|FULL] JOIN table_ref ON
// cond` arm of a FROM clause.
func (p *Parser) parseJoinClause() {
	p.start(syntax.JoinClause)
	p.eatOneOf(token.InnerKw, token.LeftKw, token.RightKw, token.FullKw)
	p.expect(token.JoinKw)
	p.parseTableRef()
	if p.eat(token.OnKw) {
		p.parseExpr()
	}
	p.finish()
}
