package parser

import (
	"github.com/cybertec-plsql/plsqlcst/syntax"
	"github.com/cybertec-plsql/plsqlcst/token"
)

// parseStatement dispatches one statement inside a block body, wrapping
// whatever it parses in a BlockStatement node. It always consumes at
// least one token: an unrecognised leading token is reported as
// ExpectedStatement and bumped, which is what lets parseStatementSequence's
// safe loop make progress through garbage input instead of looping
// forever or aborting the whole block.
func (p *Parser) parseStatement() {
	p.start(syntax.BlockStatement)
	p.parseStatementInner()
	p.finish()
}

func (p *Parser) parseStatementInner() {
	switch p.current() {
	case token.BeginKw:
		p.parseBlock()
	case token.IfKw:
		p.parseIfStmt()
	case token.CaseKw:
		p.parseCaseStmt()
	case token.LoopKw, token.ForKw, token.WhileKw:
		p.parseLoopStmt()
	case token.ForallKw:
		p.parseForallStmt()
	case token.ExitKw:
		p.parseExitStmt()
	case token.ContinueKw:
		p.parseContinueStmt()
	case token.NullKw:
		p.parseNullStmt()
	case token.ReturnKw:
		p.parseReturnStmt()
	case token.RaiseKw:
		p.parseRaiseStmt()
	case token.ExecuteKw:
		p.parseExecuteImmediateStmt()
	case token.OpenKw:
		p.parseOpenStmt()
	case token.FetchKw:
		p.parseFetchStmt()
	case token.CloseKw:
		p.parseCloseStmt()
	case token.InsertKw:
		p.parseInsertStmt()
	case token.DeleteKw:
		p.parseDeleteStmt()
	case token.UpdateKw:
		p.parseUpdateStmt()
	case token.SelectKw:
		p.parseSelectIntoStmt()
	case token.CommitKw, token.RollbackKw, token.SavepointKw:
		p.parseTransactionStmt()
	case token.SetKw:
		if p.nth(1) == token.TransactionKw {
			p.parseTransactionStmt()
		} else {
			p.parseAssignOrCallStmt()
		}
	default:
		if p.identLeadsStatement() {
			p.parseAssignOrCallStmt()
		} else {
			p.errorAt(ExpectedStatement)
			if p.current() != token.Eof {
				p.bumpAny()
			}
		}
	}
}

// identLeadsStatement reports whether the identifier starting at the
// current token continues into ':=' or '(', the two ident-led statement
// shapes. A bare identifier with neither following is not a statement on
// its own (Oracle procedure calls always take parens in this grammar),
// so it falls through to the ExpectedStatement recovery path instead of
// being silently swallowed by parseAssignOrCallStmt.
func (p *Parser) identLeadsStatement() bool {
	i := 0
	if !identComponent(p.nth(i)) {
		return false
	}
	i++
	for p.nth(i) == token.Dot && identComponent(p.nth(i+1)) {
		i += 2
	}
	switch p.nth(i) {
	case token.Assign, token.LParen:
		return true
	}
	return false
}

// parseAssignOrCallStmt handles the two productions that start with a
// (possibly qualified) identifier in statement position: `target := expr
// ;` and a bare procedure call `name(args) ;` (or with no arguments at
// all, `name ;`).
func (p *Parser) parseAssignOrCallStmt() {
	p.parseIdentOrFunctionInvocation()
	if p.at(token.Assign) {
		p.bumpAnyMap(syntax.Assign)
		p.parseExpr()
	}
	p.expect(token.Semicolon)
}

func (p *Parser) parseNullStmt() {
	p.start(syntax.NullStmt)
	p.expect(token.NullKw)
	p.expect(token.Semicolon)
	p.finish()
}

// parseReturnStmt parses `RETURN [expr] ;`.
func (p *Parser) parseReturnStmt() {
	p.start(syntax.ReturnStmt)
	p.expect(token.ReturnKw)
	if p.current() != token.Semicolon {
		p.parseExpr()
	}
	p.expect(token.Semicolon)
	p.finish()
}

// parseExitStmt parses `EXIT [name] [WHEN expr] ;`, reusing NullStmt's
// sibling shape (there is no dedicated catalogue node for EXIT/CONTINUE;
// both are represented the way RAISE with no arguments is, as a plain
// keyword-led statement whose children are whatever it consumed).
func (p *Parser) parseExitStmt() {
	p.start(syntax.RaiseStmt)
	p.expect(token.ExitKw)
	if identComponent(p.current()) {
		p.parseIdent(1)
	}
	if p.eat(token.WhenKw) {
		p.parseExpr()
	}
	p.expect(token.Semicolon)
	p.finish()
}

func (p *Parser) parseContinueStmt() {
	p.start(syntax.RaiseStmt)
	p.expect(token.ContinueKw)
	if identComponent(p.current()) {
		p.parseIdent(1)
	}
	if p.eat(token.WhenKw) {
		p.parseExpr()
	}
	p.expect(token.Semicolon)
	p.finish()
}

// parseRaiseStmt parses `RAISE [exception_name] ;`.
func (p *Parser) parseRaiseStmt() {
	p.start(syntax.RaiseStmt)
	p.expect(token.RaiseKw)
	if identComponent(p.current()) {
		p.parseIdent(0)
	}
	p.expect(token.Semicolon)
	p.finish()
}
