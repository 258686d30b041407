package parser

import (
	"github.com/cybertec-plsql/plsqlcst/syntax"
	"github.com/cybertec-plsql/plsqlcst/token"
)

// parseCreateOrReplacePrefix consumes the `CREATE [OR REPLACE]
// [EDITIONABLE|NONEDITIONABLE]` prefix shared by every top-level DDL
// statement, attaching its tokens to whatever node is presently open.
// It is a no-op (and records nothing) when the prefix isn't present,
// which is what lets the same header-parsing code serve both top-level
// `CREATE PROCEDURE` and a nested declare-section `PROCEDURE` with no
// CREATE at all.
func (p *Parser) parseCreateOrReplacePrefix() {
	if !p.eat(token.CreateKw) {
		return
	}
	if p.eat(token.OrKw) {
		p.expect(token.ReplaceKw)
	}
	p.eatOneOf(token.EditionableKw, token.NoneditionableKw)
}

// parseProcedure parses a standalone or nested procedure: the optional
// CREATE prefix, a ProcedureHeader (name and parameter list), and
// either a forward declaration's bare ';' or a full IS/AS-led body.
func (p *Parser) parseProcedure() {
	p.start(syntax.Procedure)
	p.parseCreateOrReplacePrefix()
	p.expect(token.ProcedureKw)

	p.start(syntax.ProcedureHeader)
	p.parseIdentGroup(0)
	if p.at(token.LParen) {
		p.parseParamList()
	}
	p.parseSubprogramOptions()
	p.finish()

	p.parseSubprogramBody()
	p.finish()
}

// parseSubprogramOptions consumes the optional clauses that may appear
// between a subprogram's parameter list and its IS/AS keyword:
// DETERMINISTIC, PIPELINED, PARALLEL_ENABLE, RESULT_CACHE, AUTHID
// clauses and the like reduce, for this grammar's purposes, to a run of
// keywords and identifiers consumed without further structure, since
// nothing downstream needs to distinguish them yet.
func (p *Parser) parseSubprogramOptions() {
	p.safeLoop(func() bool {
		switch p.current() {
		case token.IsKw, token.AsKw, token.Semicolon, token.EndKw, token.Eof:
			return false
		}
		p.bumpAny()
		return true
	})
}

// parseSubprogramBody parses either a forward declaration (`;`), a call
// specification body (`IS|AS LANGUAGE ... ;` or `IS|AS EXTERNAL ... ;`),
// or a full body: `IS|AS [declare-items] BEGIN stmts [EXCEPTION ...] END
// [name] ;`, reusing parseBlock's BEGIN/EXCEPTION/END handling by
// feeding it a declare section gathered the same way a top-level
// block's would be.
func (p *Parser) parseSubprogramBody() {
	if p.eat(token.Semicolon) {
		return
	}
	p.expectOneOf(token.IsKw, token.AsKw)
	if p.atOneOf(token.LanguageKw, token.ExternalKw) {
		p.parseCallSpec()
		p.expect(token.Semicolon)
		return
	}
	p.parseBlock()
}
