package parser_test

import (
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybertec-plsql/plsqlcst/parser"
	"github.com/cybertec-plsql/plsqlcst/syntax"
)

// roundTripSources exercises one production from each grammar family so
// the round-trip property below isn't just checking blocks.
var roundTripSources = []struct {
	name string
	src  string
	fn   func(*parser.Parser) *parser.Result
}{
	{"procedure", "CREATE OR REPLACE PROCEDURE p(a IN NUMBER, b OUT VARCHAR2) IS\nBEGIN\n  NULL;\nEND p;", (*parser.Parser).ParseProcedure},
	{"function", "CREATE OR REPLACE FUNCTION f(a NUMBER) RETURN NUMBER IS\nBEGIN\n  RETURN a + 1;\nEND f;", (*parser.Parser).ParseFunction},
	{"block_with_declare", "DECLARE\n  x NUMBER := 1;\nBEGIN\n  IF x > 0 THEN\n    x := x - 1;\n  END IF;\nEND;", (*parser.Parser).ParseBlock},
	{"select", "SELECT a, b FROM t WHERE a = 1 AND b = 2 ORDER BY a", (*parser.Parser).ParseQuery},
	{"insert", "INSERT INTO t (a, b) VALUES (1, 2);", (*parser.Parser).ParseDml},
	{"update", "UPDATE t SET a = 1, b = 2 WHERE a = 0;", (*parser.Parser).ParseDml},
	{"delete", "DELETE FROM t WHERE a = 0;", (*parser.Parser).ParseDml},
	{"table", "CREATE TABLE t (a NUMBER NOT NULL, b VARCHAR2(50));", (*parser.Parser).ParseTable},
	{"trigger", "CREATE OR REPLACE TRIGGER trg BEFORE INSERT ON t\nBEGIN\n  NULL;\nEND trg;", (*parser.Parser).ParseTrigger},
	{"view", "CREATE OR REPLACE VIEW v AS SELECT a FROM t;", (*parser.Parser).ParseView},
	{"sequence", "CREATE SEQUENCE seq START WITH 1 INCREMENT BY 1;", (*parser.Parser).ParseSequence},
	{"malformed", "BEGIN ABC END;", (*parser.Parser).ParseBlock},
	{"unbalanced_paren", "SELECT f(a, b FROM t", (*parser.Parser).ParseQuery},
	{"empty", "", (*parser.Parser).ParseBlock},
	{"trailing_trivia", "BEGIN NULL; END;\n\n  -- trailing comment\n", (*parser.Parser).ParseBlock},
}

// TestRoundTripIsByteIdentical operationalizes the lossless invariant:
// the root's reconstructed text must equal the original source byte for
// byte, whether or not the parse produced diagnostics.
func TestRoundTripIsByteIdentical(t *testing.T) {
	for _, tc := range roundTripSources {
		t.Run(tc.name, func(t *testing.T) {
			p := parser.New(tc.src)
			res := tc.fn(p)
			tree := syntax.NewRoot(res.Root)
			if got := tree.Text(); got != tc.src {
				t.Errorf("round-trip mismatch for %q\ninput:  %q\nresult: %q\ndiagnostics: %# v", tc.name, tc.src, got, pretty.Formatter(res.Errors))
			}
		})
	}
}

// TestDiagnosticRangesStayInBounds checks every recorded error's byte
// range falls within the source, which a recovery path that bumps past
// EOF or double-counts trivia could violate silently.
func TestDiagnosticRangesStayInBounds(t *testing.T) {
	for _, tc := range roundTripSources {
		t.Run(tc.name, func(t *testing.T) {
			p := parser.New(tc.src)
			res := tc.fn(p)
			for _, e := range res.Errors {
				assert.GreaterOrEqual(t, e.Start, 0)
				assert.LessOrEqual(t, e.End, len(tc.src))
				assert.LessOrEqual(t, e.Start, e.End)
			}
		})
	}
}

// TestCloneForUpdateThenSplicePreservesSiblings checks that replacing one
// child in a cloned red tree leaves its siblings' text untouched, the
// property that makes SpliceChildren usable for incremental edits
// instead of forcing a full reparse.
func TestCloneForUpdateThenSplicePreservesSiblings(t *testing.T) {
	const src = "BEGIN\n  a := 1;\n  b := 2;\n  c := 3;\nEND;"
	p := parser.New(src)
	res := p.ParseBlock()
	tree := syntax.NewRoot(res.Root)

	var block *syntax.RedNode
	var walk func(n *syntax.RedNode)
	walk = func(n *syntax.RedNode) {
		if block != nil {
			return
		}
		if n.Kind() == syntax.Block {
			block = n
			return
		}
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(tree)
	require.NotNil(t, block)

	clone := block.CloneForUpdate()
	stmts := clone.Children()
	require.GreaterOrEqual(t, len(stmts), 3)

	before := stmts[0].Text()
	after := stmts[2].Text()

	// SpliceChildren indexes the green node's raw child array, which
	// interleaves whitespace tokens between statements, not the
	// red-side Node-only Children() view. Find the middle statement's
	// raw index so the splice removes exactly that one node.
	rawChildren := clone.Green().Children()
	middleIdx := -1
	seen := 0
	for i, c := range rawChildren {
		if c.Node != nil && c.Node.Kind() == syntax.BlockStatement {
			if seen == 1 {
				middleIdx = i
				break
			}
			seen++
		}
	}
	require.NotEqual(t, -1, middleIdx)

	clone.SpliceChildren(middleIdx, middleIdx+1, nil)

	remaining := clone.Children()
	require.Len(t, remaining, len(stmts)-1)
	assert.Equal(t, before, remaining[0].Text())
	assert.Equal(t, after, remaining[1].Text())

	// The original tree must be unaffected by mutating the clone.
	assert.Len(t, block.Children(), len(stmts))
}
