package astview_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybertec-plsql/plsqlcst/astview"
	"github.com/cybertec-plsql/plsqlcst/parser"
	"github.com/cybertec-plsql/plsqlcst/syntax"
)

func parseRoot(t *testing.T, src string, fn func(*parser.Parser) *parser.Result) astview.Root {
	t.Helper()
	p := parser.New(src)
	res := fn(p)
	root, err := astview.NewRoot(syntax.NewRoot(res.Root))
	require.NoError(t, err)
	return root
}

func TestProcedureNameAndBody(t *testing.T) {
	const src = `CREATE OR REPLACE PROCEDURE schema.multiple_parameters(
		p1 VARCHAR2
		, p2 VARCHAR2
	)
	IS
	BEGIN
		NULL;
	END multiple_parameters;`

	root := parseRoot(t, src, (*parser.Parser).ParseProcedure)

	proc, ok := root.Procedure()
	require.True(t, ok)

	name, ok := proc.Name()
	require.True(t, ok)
	assert.Equal(t, "schema.multiple_parameters", name)

	header, ok := proc.Header()
	require.True(t, ok)
	params, ok := header.ParamList()
	require.True(t, ok)
	assert.Len(t, params.Params(), 2)

	body, ok := proc.Body()
	require.True(t, ok)
	stmts := body.Statements()
	require.Len(t, stmts, 1)
	inner, ok := stmts[0].Inner()
	require.True(t, ok)
	assert.Equal(t, syntax.NullStmt, inner.Kind())
}

func TestFunctionInvocationArguments(t *testing.T) {
	const src = "SELECT NVL2(col1, col2 + 1, col3) FROM dual"

	root := parseRoot(t, src, (*parser.Parser).ParseQuery)
	sel, ok := root.SelectStmt()
	require.True(t, ok)

	clause, ok := sel.SelectClause()
	require.True(t, ok)

	var fi astview.FunctionInvocation
	found := false
	var walk func(n *syntax.RedNode)
	walk = func(n *syntax.RedNode) {
		if found {
			return
		}
		if v, ok := astview.CastFunctionInvocation(n); ok {
			fi, found = v, true
			return
		}
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(clause)
	require.True(t, found)

	ident, ok := fi.Ident()
	require.True(t, ok)
	assert.Equal(t, "NVL2", ident.Name())

	args := fi.Arguments()
	require.Len(t, args, 3)
	assert.Equal(t, "col1", args[0].Text())
	assert.Equal(t, "col2 + 1", args[1].Text())
	assert.Equal(t, "col3", args[2].Text())
}

func TestDeleteAndUpdateView(t *testing.T) {
	root := parseRoot(t, "DELETE FROM persons WHERE id = 1;", (*parser.Parser).ParseDml)
	del, ok := root.DeleteStmt()
	require.True(t, ok)
	name, ok := del.TableName()
	require.True(t, ok)
	assert.Equal(t, "persons", name)
	where, ok := del.WhereClause()
	require.True(t, ok)
	expr, ok := where.Expression()
	require.True(t, ok)
	assert.Contains(t, expr.Text(), "id")

	root = parseRoot(t, "UPDATE persons SET name = 'x' WHERE id = 1;", (*parser.Parser).ParseDml)
	upd, ok := root.UpdateStmt()
	require.True(t, ok)
	name, ok = upd.TableName()
	require.True(t, ok)
	assert.Equal(t, "persons", name)
	set, ok := upd.SetClause()
	require.True(t, ok)
	assert.Len(t, set.Assignments(), 1)
}

func TestNewRootRejectsNonRoot(t *testing.T) {
	p := parser.New("BEGIN NULL; END;")
	res := p.ParseBlock()
	tree := syntax.NewRoot(res.Root)
	require.NotEmpty(t, tree.Children())
	blockNode := tree.Children()[0]
	require.Equal(t, syntax.Block, blockNode.Kind())

	_, err := astview.NewRoot(blockNode)
	assert.Error(t, err)
}
