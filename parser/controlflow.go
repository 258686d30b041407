package parser

import (
	"github.com/cybertec-plsql/plsqlcst/syntax"
	"github.com/cybertec-plsql/plsqlcst/token"
)

// parseIfStmt parses `IF expr THEN stmts {ELSIF expr THEN stmts} [ELSE
// stmts] END IF ;`.
func (p *Parser) parseIfStmt() {
	p.start(syntax.IfStmt)
	p.expect(token.IfKw)
	p.parseExpr()
	p.expect(token.ThenKw)
	p.parseStatementSequenceUntil(token.ElsifKw, token.ElseKw, token.EndKw)

	p.safeLoop(func() bool {
		if p.current() != token.ElsifKw {
			return false
		}
		p.start(syntax.ElsifBranch)
		p.bumpAny()
		p.parseExpr()
		p.expect(token.ThenKw)
		p.parseStatementSequenceUntil(token.ElsifKw, token.ElseKw, token.EndKw)
		p.finish()
		return true
	})

	if p.eat(token.ElseKw) {
		p.parseStatementSequenceUntil(token.EndKw)
	}

	p.expect(token.EndKw)
	p.expect(token.IfKw)
	p.expect(token.Semicolon)
	p.finish()
}

// parseStatementSequenceUntil is parseStatementSequence generalised to
// stop at any of several sentinel keywords in addition to EXCEPTION/END/
// Eof, for bodies nested inside IF/LOOP/WHEN arms.
func (p *Parser) parseStatementSequenceUntil(stop ...token.Kind) {
	p.safeLoop(func() bool {
		cur := p.current()
		if cur == token.ExceptionKw || cur == token.EndKw || cur == token.Eof {
			return false
		}
		for _, s := range stop {
			if cur == s {
				return false
			}
		}
		p.parseStatement()
		return true
	})
}

// parseCaseStmt parses both the simple form (`CASE expr WHEN ... END
// CASE ;`) and the searched form (`CASE WHEN cond ... END CASE ;`): the
// only difference is whether an expression immediately follows CASE.
func (p *Parser) parseCaseStmt() {
	p.start(syntax.CaseExpr)
	p.expect(token.CaseKw)
	if p.current() != token.WhenKw {
		p.parseExpr()
	}
	p.safeLoop(func() bool {
		if p.current() != token.WhenKw {
			return false
		}
		p.start(syntax.WhenClause)
		p.bumpAny()
		p.parseExpr()
		p.expect(token.ThenKw)
		p.parseStatementSequenceUntil(token.WhenKw, token.ElseKw)
		p.finish()
		return true
	})
	if p.eat(token.ElseKw) {
		p.parseStatementSequenceUntil(token.EndKw)
	}
	p.expect(token.EndKw)
	p.eat(token.CaseKw)
	p.expect(token.Semicolon)
	p.finish()
}

// parseLoopStmt parses the bare, WHILE-guarded, numeric FOR (`lo..hi`)
// and query FOR (`IN (select_stmt)`) forms, all sharing `LOOP stmts END
// LOOP [label] ;`. A FOR over a named cursor (`IN cur LOOP`) goes down
// the numeric path and records an ExpectedToken error for the missing
// `..`.
func (p *Parser) parseLoopStmt() {
	p.start(syntax.LoopStmt)

	switch p.current() {
	case token.WhileKw:
		p.bumpAny()
		p.parseExpr()
	case token.ForKw:
		p.start(syntax.ForLoopControl)
		p.bumpAny()
		p.parseIdent(1)
		p.expect(token.InKw)
		p.eat(token.ReverseKw)
		if p.at(token.LParen) && p.nth(1) == token.SelectKw {
			p.bumpAny()
			p.parseSelectStmt(false)
			p.expect(token.RParen)
		} else {
			p.parseExpr()
			p.expect(token.DoubleDot)
			p.parseExpr()
		}
		p.finish()
	}

	p.expect(token.LoopKw)
	p.parseStatementSequenceUntil(token.EndKw)
	p.expect(token.EndKw)
	p.expect(token.LoopKw)
	if identComponent(p.current()) {
		p.parseIdent(1)
	}
	p.expect(token.Semicolon)
	p.finish()
}

// parseForallStmt parses `FORALL i IN {lo..hi | INDICES OF coll |
// VALUES OF coll} [SAVE EXCEPTIONS] dml_stmt`.
func (p *Parser) parseForallStmt() {
	p.start(syntax.ForallStmt)
	p.expect(token.ForallKw)
	p.parseIdent(1)
	p.expect(token.InKw)

	switch {
	case p.at(token.IndicesKw) && p.nth(1) == token.OfKw:
		p.bumpAny()
		p.bumpAny()
		p.parseIdentGroup(0)
	case p.at(token.ValuesKw) && p.nth(1) == token.OfKw:
		p.bumpAny()
		p.bumpAny()
		p.parseIdentGroup(0)
	default:
		p.parseExpr()
		p.expect(token.DoubleDot)
		p.parseExpr()
	}

	if p.at(token.SaveKw) && p.nth(1) == token.ExceptionsKw {
		p.bumpAny()
		p.bumpAny()
	}

	switch p.current() {
	case token.InsertKw:
		p.parseInsertStmt()
	case token.UpdateKw:
		p.parseUpdateStmt()
	case token.DeleteKw:
		p.parseDeleteStmt()
	default:
		p.parseAssignOrCallStmt()
	}
	p.finish()
}

// parseExecuteImmediateStmt parses `EXECUTE IMMEDIATE expr [INTO
// ident_list] [USING bind_list] [RETURNING INTO ident_list] ;`.
func (p *Parser) parseExecuteImmediateStmt() {
	p.start(syntax.ExecuteImmediateStmt)
	p.expect(token.ExecuteKw)
	p.expect(token.ImmediateKw)
	p.parseExpr()

	if p.eat(token.IntoKw) {
		p.start(syntax.IntoClause)
		p.safeLoop(func() bool {
			p.parseIdentGroup(0)
			return p.eat(token.Comma)
		})
		p.finish()
	}

	if p.eat(token.UsingKw) {
		p.parseUsingClause()
	}

	if p.at(token.ReturningKw) && p.nth(1) == token.IntoKw {
		p.bumpAny()
		p.bumpAny()
		p.start(syntax.IntoClause)
		p.safeLoop(func() bool {
			p.parseIdentGroup(0)
			return p.eat(token.Comma)
		})
		p.finish()
	}

	p.expect(token.Semicolon)
	p.finish()
}

// parseUsingClause parses the comma-separated bind argument list of an
// EXECUTE IMMEDIATE statement's USING clause, each optionally prefixed
// by IN/OUT/IN OUT mode.
func (p *Parser) parseUsingClause() {
	p.start(syntax.UsingClause)
	p.start(syntax.BindList)
	p.safeLoop(func() bool {
		p.eat(token.InKw)
		p.eat(token.OutKw)
		p.parseExpr()
		return p.eat(token.Comma)
	})
	p.finish()
	p.finish()
}

// parseOpenStmt parses `OPEN cursor_name [(args)] ;` and the cursor-FOR
// variant `OPEN cursor_name FOR select_stmt ;`.
func (p *Parser) parseOpenStmt() {
	p.start(syntax.OpenStmt)
	p.expect(token.OpenKw)
	p.parseIdent(1)
	if p.at(token.LParen) {
		p.parseArgumentList()
	}
	if p.eat(token.ForKw) {
		p.parseSelectStmt(false)
	}
	p.expect(token.Semicolon)
	p.finish()
}

// parseFetchStmt parses `FETCH cursor_name INTO ident_list ;`. The BULK
// COLLECT INTO variant is not recognised: it records an ExpectedToken
// error for INTO at BULK.
func (p *Parser) parseFetchStmt() {
	p.start(syntax.FetchStmt)
	p.expect(token.FetchKw)
	p.parseIdent(1)
	p.expect(token.IntoKw)
	p.start(syntax.IntoClause)
	p.safeLoop(func() bool {
		p.parseIdentGroup(0)
		return p.eat(token.Comma)
	})
	p.finish()
	p.expect(token.Semicolon)
	p.finish()
}

// parseCloseStmt parses `CLOSE cursor_name ;`.
func (p *Parser) parseCloseStmt() {
	p.start(syntax.CloseStmt)
	p.expect(token.CloseKw)
	p.parseIdent(1)
	p.expect(token.Semicolon)
	p.finish()
}
