package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybertec-plsql/plsqlcst/parser"
	"github.com/cybertec-plsql/plsqlcst/syntax"
)

// TestEmptyInputNeverPanics checks every entry point accepts "" and
// still returns a Root whose text is empty, rather than panicking on an
// immediate EOF.
func TestEmptyInputNeverPanics(t *testing.T) {
	entries := map[string]func(*parser.Parser) *parser.Result{
		"procedure": (*parser.Parser).ParseProcedure,
		"function":  (*parser.Parser).ParseFunction,
		"package":   (*parser.Parser).ParsePackage,
		"trigger":   (*parser.Parser).ParseTrigger,
		"view":      (*parser.Parser).ParseView,
		"table":     (*parser.Parser).ParseTable,
		"sequence":  (*parser.Parser).ParseSequence,
		"block":     (*parser.Parser).ParseBlock,
		"query":     (*parser.Parser).ParseQuery,
		"dml":       (*parser.Parser).ParseDml,
		"unit":      (*parser.Parser).ParseUnit,
		"any":       (*parser.Parser).ParseAny,
	}
	for name, fn := range entries {
		t.Run(name, func(t *testing.T) {
			require.NotPanics(t, func() {
				p := parser.New("")
				res := fn(p)
				tree := syntax.NewRoot(res.Root)
				assert.Equal(t, "", tree.Text())
			})
		})
	}
}

// TestWhitespaceAndCommentOnlyInput checks an input with no real tokens
// still round-trips through ParseUnit's dispatch, since trivia-only
// input has no keyword for any grammar rule to latch onto and falls
// through to the Unhandled recovery path.
func TestWhitespaceAndCommentOnlyInput(t *testing.T) {
	const src = "   \n-- just a comment\n  "
	p := parser.New(src)
	res := p.ParseUnit()
	tree := syntax.NewRoot(res.Root)
	assert.Equal(t, src, tree.Text())
}

// TestReservedWordAsBareIdentifierRecovers checks that using a reserved
// keyword where an identifier is expected is reported and recovered
// from rather than accepted silently or panicking.
func TestReservedWordAsBareIdentifierRecovers(t *testing.T) {
	const src = "BEGIN\n  SELECT := 1;\nEND;"
	p := parser.New(src)
	res := p.ParseBlock()
	tree := syntax.NewRoot(res.Root)
	assert.Equal(t, src, tree.Text())
	assert.NotEmpty(t, res.Errors)
}

// TestLegacyOuterJoinMarkerAdjacentToOperator checks the `(+)` Oracle
// legacy outer-join marker, lexed as one OracleJoin token, still
// round-trips when a comparison operator follows it directly.
func TestLegacyOuterJoinMarkerAdjacentToOperator(t *testing.T) {
	const src = "SELECT * FROM a, b WHERE a.id(+)= b.id"
	p := parser.New(src)
	res := p.ParseQuery()
	tree := syntax.NewRoot(res.Root)
	assert.Equal(t, src, tree.Text())
}

// TestUnbalancedClosingParenIsReported checks a stray ')' with no
// matching '(' is reported rather than silently absorbed: the select
// list stops at it, the missing FROM is recorded, and the unparsed tail
// comes back as Incomplete. No UnbalancedParens error is recorded for a
// stray ')'.
func TestUnbalancedClosingParenIsReported(t *testing.T) {
	const src = "SELECT a) FROM t"
	p := parser.New(src)
	res := p.ParseQuery()
	tree := syntax.NewRoot(res.Root)
	assert.Equal(t, src, tree.Text())
	assert.NotEmpty(t, res.Errors)
}

// TestDeeplyNestedParensDoNotOverflow checks a long parenthesised
// expression chain parses without blowing the Go call stack, since
// exprBP recurses once per nesting level.
func TestDeeplyNestedParensDoNotOverflow(t *testing.T) {
	const depth = 500
	src := "SELECT "
	for i := 0; i < depth; i++ {
		src += "("
	}
	src += "1"
	for i := 0; i < depth; i++ {
		src += ")"
	}
	src += " FROM dual"

	require.NotPanics(t, func() {
		p := parser.New(src)
		res := p.ParseQuery()
		tree := syntax.NewRoot(res.Root)
		assert.Equal(t, src, tree.Text())
	})
}
