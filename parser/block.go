package parser

import (
	"github.com/cybertec-plsql/plsqlcst/syntax"
	"github.com/cybertec-plsql/plsqlcst/token"
)

// parseBlock parses a PL/SQL block: an optional DECLARE section, a
// mandatory BEGIN ... statement sequence, an optional EXCEPTION section,
// and END, optionally followed by a repeat of the block's label and
// always by ';'. Anonymous blocks and the bodies of procedures,
// functions, packages and triggers all go through this one production.
func (p *Parser) parseBlock() {
	p.start(syntax.Block)

	if p.at(token.DeclareKw) || declarationStarts(p.current()) {
		p.parseDeclareSection()
	}

	p.expect(token.BeginKw)
	p.parseStatementSequence()

	if p.eat(token.ExceptionKw) {
		p.parseExceptionSection()
	}

	p.expect(token.EndKw)
	if identComponent(p.current()) && p.current() != token.BeginKw {
		p.parseIdent(1)
	}
	p.expect(token.Semicolon)

	p.finish()
}

// declarationStarts reports whether kind can begin a declare section
// item even without a leading DECLARE keyword, which PL/SQL requires for
// a top-level block but not for package/procedure/function declare
// sections (those are introduced by IS/AS instead).
func declarationStarts(kind token.Kind) bool {
	switch kind {
	case token.CursorKw, token.TypeKw, token.SubtypeKw, token.ProcedureKw,
		token.FunctionKw, token.PragmaKw:
		return true
	case token.BeginKw:
		return false
	}
	return identComponent(kind)
}

// parseStatementSequence parses zero or more statements up to (but not
// including) EXCEPTION or END, recovering from unrecognised statements
// one token at a time via the safe loop so a single malformed statement
// never swallows the remainder of the block.
func (p *Parser) parseStatementSequence() {
	p.safeLoop(func() bool {
		switch p.current() {
		case token.ExceptionKw, token.EndKw, token.Eof:
			return false
		}
		p.parseStatement()
		return true
	})
}

// parseExceptionSection parses one or more WHEN handler arms following
// the EXCEPTION keyword (already consumed by the caller), wrapped in an
// ExceptionSection node.
func (p *Parser) parseExceptionSection() {
	p.start(syntax.ExceptionSection)
	p.safeLoop(func() bool {
		if p.current() != token.WhenKw {
			return false
		}
		p.parseExceptionHandler()
		return true
	})
	p.finish()
}

// parseExceptionHandler parses one WHEN <name>[ OR <name>]* THEN
// <statements> arm.
func (p *Parser) parseExceptionHandler() {
	p.start(syntax.ExceptionHandler)
	p.expect(token.WhenKw)
	p.safeLoop(func() bool {
		if p.at(token.OthersKw) {
			p.bumpAny()
		} else {
			p.parseIdent(0)
		}
		return p.eat(token.OrKw)
	})
	p.expect(token.ThenKw)
	p.safeLoop(func() bool {
		switch p.current() {
		case token.WhenKw, token.EndKw, token.Eof:
			return false
		}
		p.parseStatement()
		return true
	})
	p.finish()
}
