package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybertec-plsql/plsqlcst/syntax"
)

// findFirst returns the first node (pre-order, root included) whose kind
// equals want, or nil. Leaf tokens are not searched; see findFirstToken.
func findFirst(root *syntax.RedNode, want syntax.Kind) *syntax.RedNode {
	if root.Kind() == want {
		return root
	}
	for _, c := range root.Children() {
		if found := findFirst(c, want); found != nil {
			return found
		}
	}
	return nil
}

// findFirstToken returns the first leaf token under root (pre-order)
// whose kind equals want, or nil.
func findFirstToken(root *syntax.RedNode, want syntax.Kind) *syntax.GreenToken {
	for _, el := range root.ChildrenWithTokens() {
		if el.Token == nil {
			if found := findFirstToken(el.Node, want); found != nil {
				return found
			}
		} else if el.Token.Kind() == want {
			return el.Token
		}
	}
	return nil
}

// leafTexts collects the text of every leaf token under root, in order.
func leafTexts(root *syntax.RedNode) []string {
	var out []string
	for _, el := range root.ChildrenWithTokens() {
		if el.Token != nil {
			out = append(out, el.Token.Text())
			continue
		}
		out = append(out, leafTexts(el.Node)...)
	}
	return out
}

func TestScenario1MinimalProcedure(t *testing.T) {
	src := "CREATE PROCEDURE p IS BEGIN NULL; END;"
	p := New(src)
	res := p.ParseProcedure()

	assert.Empty(t, res.Errors)
	assert.Equal(t, src, res.Root.Text())

	tree := syntax.NewRoot(res.Root)
	proc := findFirst(tree, syntax.Procedure)
	require.NotNil(t, proc)

	header := findFirst(proc, syntax.ProcedureHeader)
	require.NotNil(t, header)
	ident := findFirst(header, syntax.IdentGroup)
	require.NotNil(t, ident)
	assert.Equal(t, "p", ident.Text())

	block := findFirst(proc, syntax.Block)
	require.NotNil(t, block)
	stmt := findFirst(block, syntax.BlockStatement)
	require.NotNil(t, stmt)
	null := findFirst(stmt, syntax.NullStmt)
	require.NotNil(t, null)
}

func TestScenario2PrattPrecedence(t *testing.T) {
	src := "1 + 2 * 3 / 4 - 5"
	p := New(src)
	p.parseExpr()
	res := p.finishParse(syntax.Root)

	assert.Empty(t, res.Errors)
	assert.Equal(t, src, res.Root.Text())

	tree := syntax.NewRoot(res.Root)
	outer := findFirst(tree, syntax.Expression)
	require.NotNil(t, outer)

	children := outer.Children()
	require.GreaterOrEqual(t, len(children), 1)
	left := children[0]
	assert.Equal(t, syntax.Expression, left.Kind())
	assert.Equal(t, "1 + 2 * 3 / 4", strings.TrimSpace(left.Text()))

	leftChildren := left.Children()
	require.GreaterOrEqual(t, len(leftChildren), 1)
	innerMul := leftChildren[len(leftChildren)-1]
	assert.Equal(t, syntax.Expression, innerMul.Kind())
	assert.Equal(t, "2 * 3 / 4", strings.TrimSpace(innerMul.Text()))

	innerMulChildren := innerMul.Children()
	require.GreaterOrEqual(t, len(innerMulChildren), 1)
	innerTimes := innerMulChildren[0]
	assert.Equal(t, syntax.Expression, innerTimes.Kind())
	assert.Equal(t, "2 * 3", strings.TrimSpace(innerTimes.Text()))
}

func TestScenario3OracleOuterJoinInWhere(t *testing.T) {
	src := "SELECT * FROM persons, places WHERE places.person_id(+) = persons.id;"
	p := New(src)
	res := p.ParseQuery()

	assert.Empty(t, res.Errors)
	assert.Equal(t, src, res.Root.Text())

	tree := syntax.NewRoot(res.Root)
	where := findFirst(tree, syntax.WhereClause)
	require.NotNil(t, where)

	texts := leafTexts(where)
	joined := strings.Join(texts, "")
	assert.Contains(t, joined, "(+)")

	foundJoin := false
	for _, tok := range texts {
		if tok == "(+)" {
			foundJoin = true
		}
	}
	assert.True(t, foundJoin, "expected a standalone (+) token in %v", texts)
}

func TestScenario4TolerantErrorRecovery(t *testing.T) {
	src := "BEGIN ABC END;"
	p := New(src)
	res := p.ParseBlock()

	assert.Equal(t, src, res.Root.Text())
	require.Len(t, res.Errors, 1)
	assert.Equal(t, ExpectedStatement, res.Errors[0].Kind)

	tree := syntax.NewRoot(res.Root)
	block := findFirst(tree, syntax.Block)
	require.NotNil(t, block)
	stmt := findFirst(block, syntax.BlockStatement)
	require.NotNil(t, stmt, "the unrecognised token is still wrapped in a BlockStatement")

	ident := findFirstToken(stmt, syntax.Ident)
	require.NotNil(t, ident)
	assert.Equal(t, "ABC", ident.Text())

	assert.Contains(t, res.Root.Text(), "END")
}

func TestScenario5SelectMissingIntoInsideBlock(t *testing.T) {
	src := "BEGIN SELECT 1 FROM dual; END;"
	p := New(src)
	res := p.ParseBlock()

	assert.Equal(t, src, res.Root.Text())

	var intoErr *Error
	for _, e := range res.Errors {
		if e.Kind == ExpectedToken {
			intoErr = e
		}
	}
	require.NotNil(t, intoErr, "expected one ExpectedToken error")
	require.Equal(t, intoErr.Token.String(), "IntoKw")

	tree := syntax.NewRoot(res.Root)
	sel := findFirst(tree, syntax.SelectStmt)
	require.NotNil(t, sel)
	from := findFirst(sel, syntax.FromClause)
	require.NotNil(t, from)
	assert.Contains(t, from.Text(), "dual")

	// expect records its error at the current token's range: here the
	// FROM keyword that follows "SELECT 1" where INTO was required.
	fromAt := strings.Index(src, "FROM dual")
	atFrom := intoErr.Start == fromAt && intoErr.End == fromAt+len("FROM")
	assert.True(t, atFrom, "ExpectedToken(INTO) should cover the FROM token right after 'SELECT 1', got [%d,%d)", intoErr.Start, intoErr.End)
}
