package parser

import (
	"github.com/cybertec-plsql/plsqlcst/syntax"
	"github.com/cybertec-plsql/plsqlcst/token"
)

// Each ParseXxx method drives one top-level grammar production to
// completion and wraps whatever it built as the single child of a
// Root node, the same way finishParse always produces a tree no matter
// how many errors accumulated along the way.

// ParseProcedure parses one `CREATE [OR REPLACE] PROCEDURE ...` unit.
func (p *Parser) ParseProcedure() *Result {
	p.parseProcedure()
	return p.finishParse(syntax.Root)
}

// ParseFunction parses one `CREATE [OR REPLACE] FUNCTION ...` unit.
func (p *Parser) ParseFunction() *Result {
	p.parseFunction()
	return p.finishParse(syntax.Root)
}

// ParsePackage parses one `CREATE [OR REPLACE] PACKAGE [BODY] ...` unit.
func (p *Parser) ParsePackage() *Result {
	p.parsePackage()
	return p.finishParse(syntax.Root)
}

// ParseTrigger parses one `CREATE [OR REPLACE] TRIGGER ...` unit.
func (p *Parser) ParseTrigger() *Result {
	p.parseTrigger()
	return p.finishParse(syntax.Root)
}

// ParseView parses one `CREATE [OR REPLACE] [FORCE] VIEW ...` unit.
func (p *Parser) ParseView() *Result {
	p.parseView()
	return p.finishParse(syntax.Root)
}

// ParseTable parses one `CREATE TABLE ...` unit.
func (p *Parser) ParseTable() *Result {
	p.parseTable()
	return p.finishParse(syntax.Root)
}

// ParseSequence parses one `CREATE SEQUENCE ...` unit.
func (p *Parser) ParseSequence() *Result {
	p.parseSequence()
	return p.finishParse(syntax.Root)
}

// ParseBlock parses one anonymous `[DECLARE ...] BEGIN ... END;` block.
func (p *Parser) ParseBlock() *Result {
	p.parseBlock()
	return p.finishParse(syntax.Root)
}

// ParseQuery parses one bare `SELECT ...` statement, with no INTO
// clause required (the position a cursor body or a tool issuing ad hoc
// queries would use, as opposed to SELECT INTO inside a block body).
func (p *Parser) ParseQuery() *Result {
	p.parseSelectStmt(false)
	p.eat(token.Semicolon)
	return p.finishParse(syntax.Root)
}

// ParseDml parses one bare INSERT, UPDATE or DELETE statement.
func (p *Parser) ParseDml() *Result {
	switch p.current() {
	case token.InsertKw:
		p.parseInsertStmt()
	case token.DeleteKw:
		p.parseDeleteStmt()
	case token.UpdateKw:
		p.parseUpdateStmt()
	default:
		p.errorAt(ExpectedStatement)
	}
	return p.finishParse(syntax.Root)
}

// createModifiers are the keywords that can appear between CREATE and
// the keyword naming what's being created (OR REPLACE and the
// editioning/force/crossedition modifiers); detectCreateTarget skips
// over them.
var createModifiers = []token.Kind{
	token.OrKw, token.ReplaceKw, token.EditionableKw, token.NoneditionableKw,
	token.ForceKw, token.CrosseditionKw,
}

// detectCreateTarget looks past CREATE and any OR REPLACE / editioning
// / FORCE modifiers to find the keyword naming what's being created,
// without consuming anything.
func (p *Parser) detectCreateTarget() token.Kind {
	for i := 1; i < 8; i++ {
		k := p.nth(i)
		switch k {
		case token.ProcedureKw, token.FunctionKw, token.PackageKw, token.TriggerKw,
			token.ViewKw, token.TableKw, token.SequenceKw:
			return k
		}
		isModifier := false
		for _, m := range createModifiers {
			if k == m {
				isModifier = true
				break
			}
		}
		if !isModifier {
			return token.Invalid
		}
	}
	return token.Invalid
}

// ParseUnit parses one top-level PL/SQL unit of whatever shape it turns
// out to be: a CREATE PROCEDURE/FUNCTION/PACKAGE/TRIGGER/VIEW/TABLE/
// SEQUENCE, an anonymous DECLARE/BEGIN block, or a bare DML or query
// statement. An input that matches none of those is reported as
// Unhandled and the tree still covers every byte via finishParse's own
// recovery. This is the auto-detecting entry point plsqlcst.Parse uses;
// it has no grammar-less counterpart in the original implementation,
// which only exposes one parse_xxx function per production plus the
// dumb bump-through-EOF parse_any ParseAny implements below.
func (p *Parser) ParseUnit() *Result {
	switch {
	case p.at(token.CreateKw):
		switch p.detectCreateTarget() {
		case token.ProcedureKw:
			return p.ParseProcedure()
		case token.FunctionKw:
			return p.ParseFunction()
		case token.PackageKw:
			return p.ParsePackage()
		case token.TriggerKw:
			return p.ParseTrigger()
		case token.ViewKw:
			return p.ParseView()
		case token.TableKw:
			return p.ParseTable()
		case token.SequenceKw:
			return p.ParseSequence()
		}
	case p.at(token.DeclareKw), p.at(token.BeginKw):
		return p.ParseBlock()
	case p.at(token.SelectKw):
		return p.ParseQuery()
	case p.atOneOf(token.InsertKw, token.UpdateKw, token.DeleteKw):
		return p.ParseDml()
	}
	p.errorHere(Unhandled, "top-level unit")
	return p.finishParse(syntax.Root)
}

// ParseAny performs no grammar dispatch at all: it bumps every token
// through Eof into a flat sequence of children with no structure beyond
// that. This is the tolerant consumption spec.md calls for when building
// a replacement subtree for SpliceChildren out of text whose grammar is
// unknown or beside the point — a splice call site only needs the
// replacement's bytes preserved, not parsed.
func (p *Parser) ParseAny() *Result {
	p.safeLoop(func() bool {
		if p.current() == token.Eof {
			return false
		}
		p.bumpAny()
		return true
	})
	return p.finishParse(syntax.Root)
}
