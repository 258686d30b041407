// Package plsqlcst provides a lossless, error-tolerant parser for
// Oracle PL/SQL.
//
// Unlike a conventional AST parser, plsqlcst never fails: every Parse
// call returns a concrete syntax tree that covers every byte of the
// input, plus a (possibly empty) list of diagnostics describing where
// the input deviated from the grammar. The tree is lossless — trivia
// (whitespace and comments) are ordinary children, so the original
// source can always be recovered by concatenating every token's text.
//
// Basic usage:
//
//	res := plsqlcst.Parse(src)
//	fmt.Println(res.Root.Text())
//	for _, e := range res.Errors {
//	    fmt.Println(e)
//	}
//
// For callers that already know what kind of unit they're parsing
// (tooling that only ever sees CREATE PROCEDURE bodies, say), the
// ParseXxx family skips the top-level dispatch in Parse and goes
// straight to the matching grammar production.
package plsqlcst

import (
	"github.com/cybertec-plsql/plsqlcst/parser"
	"github.com/cybertec-plsql/plsqlcst/syntax"
)

// Result is the outcome of one parse: a tree that always exists and
// the diagnostics recorded while building it.
type Result = parser.Result

// Parse parses one top-level PL/SQL unit, auto-detecting whether it is
// a CREATE PROCEDURE/FUNCTION/PACKAGE/TRIGGER/VIEW/TABLE/SEQUENCE, an
// anonymous block, or a bare DML/query statement.
func Parse(src string) *Result {
	p := parser.Get(src)
	defer parser.Put(p)
	return p.ParseUnit()
}

// ParseProcedure parses one CREATE [OR REPLACE] PROCEDURE unit.
func ParseProcedure(src string) *Result {
	p := parser.Get(src)
	defer parser.Put(p)
	return p.ParseProcedure()
}

// ParseFunction parses one CREATE [OR REPLACE] FUNCTION unit.
func ParseFunction(src string) *Result {
	p := parser.Get(src)
	defer parser.Put(p)
	return p.ParseFunction()
}

// ParsePackage parses one CREATE [OR REPLACE] PACKAGE [BODY] unit.
func ParsePackage(src string) *Result {
	p := parser.Get(src)
	defer parser.Put(p)
	return p.ParsePackage()
}

// ParseTrigger parses one CREATE [OR REPLACE] TRIGGER unit.
func ParseTrigger(src string) *Result {
	p := parser.Get(src)
	defer parser.Put(p)
	return p.ParseTrigger()
}

// ParseView parses one CREATE [OR REPLACE] [FORCE] VIEW unit.
func ParseView(src string) *Result {
	p := parser.Get(src)
	defer parser.Put(p)
	return p.ParseView()
}

// ParseTable parses one CREATE TABLE unit.
func ParseTable(src string) *Result {
	p := parser.Get(src)
	defer parser.Put(p)
	return p.ParseTable()
}

// ParseSequence parses one CREATE SEQUENCE unit.
func ParseSequence(src string) *Result {
	p := parser.Get(src)
	defer parser.Put(p)
	return p.ParseSequence()
}

// ParseBlock parses one anonymous [DECLARE ...] BEGIN ... END; block.
func ParseBlock(src string) *Result {
	p := parser.Get(src)
	defer parser.Put(p)
	return p.ParseBlock()
}

// ParseQuery parses one bare SELECT statement (no INTO clause).
func ParseQuery(src string) *Result {
	p := parser.Get(src)
	defer parser.Put(p)
	return p.ParseQuery()
}

// ParseDml parses one bare INSERT, UPDATE or DELETE statement.
func ParseDml(src string) *Result {
	p := parser.Get(src)
	defer parser.Put(p)
	return p.ParseDml()
}

// Tree re-exports syntax.RedNode for callers that want the positional,
// navigable view (Kind, Text, Parent, Children, Ancestors, ...)
// without importing the syntax package directly. Call NewTree on a
// Result to build one.
type Tree = syntax.RedNode

// NewTree builds the navigable red-tree overlay over res.Root. Building
// it is cheap and nothing caches it, so callers that only need to walk
// the tree once can build-and-discard freely.
func NewTree(res *Result) *Tree {
	return syntax.NewRoot(res.Root)
}
