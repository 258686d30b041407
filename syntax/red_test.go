package syntax

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// snapshot is a plain, comparable projection of a RedNode subtree —
// Kind plus recursive children, deliberately dropping parent pointers
// and offsets so go-cmp can diff two trees structurally instead of by
// identity.
type snapshot struct {
	Kind     Kind
	Text     string
	Children []snapshot
}

func snapshotOf(n *RedNode) snapshot {
	children := n.Children()
	s := snapshot{Kind: n.Kind(), Text: n.Text()}
	if len(children) > 0 {
		s.Children = make([]snapshot, len(children))
		for i, c := range children {
			s.Children[i] = snapshotOf(c)
		}
	}
	return s
}

func buildSample() *GreenNode {
	// root( ident_group( "a" "." "b" ) " " comparison_op( "=" ) " " integer( "1" ) )
	idGroup := NewGreenNode(IdentGroup, []GreenChild{
		{Token: NewGreenToken(Ident, "a")},
		{Token: NewGreenToken(Dot, ".")},
		{Token: NewGreenToken(Ident, "b")},
	})
	return NewGreenNode(Expression, []GreenChild{
		{Node: idGroup},
		{Token: NewGreenToken(Whitespace, " ")},
		{Token: NewGreenToken(ComparisonOp, "=")},
		{Token: NewGreenToken(Whitespace, " ")},
		{Token: NewGreenToken(Integer, "1")},
	})
}

func TestRedNodeTextRangeAndText(t *testing.T) {
	root := NewRoot(buildSample())
	assert.Equal(t, "a.b = 1", root.Text())
	start, end := root.TextRange()
	assert.Equal(t, 0, start)
	assert.Equal(t, len("a.b = 1"), end)
}

func TestRedNodeNavigation(t *testing.T) {
	root := NewRoot(buildSample())
	children := root.Children()
	require.Len(t, children, 1)
	idGroup := children[0]
	assert.Equal(t, IdentGroup, idGroup.Kind())
	assert.Equal(t, root, idGroup.Parent())
	s, e := idGroup.TextRange()
	assert.Equal(t, 0, s)
	assert.Equal(t, 3, e)
}

func TestTokenAtOffsetSingleAndBoundary(t *testing.T) {
	root := NewRoot(buildSample())

	mid := root.TokenAtOffset(0) // start of input: only "a" touches it
	require.NotNil(t, mid.Single)
	assert.Equal(t, "a", mid.Single.Token.Text())

	boundary := root.TokenAtOffset(3) // right after "a.b", before the space
	assert.NotNil(t, boundary.BetweenLeft)
	assert.NotNil(t, boundary.BetweenRight)
}

func TestFirstLastToken(t *testing.T) {
	root := NewRoot(buildSample())
	assert.Equal(t, "a", root.FirstToken().Text())
	assert.Equal(t, "1", root.LastToken().Text())
}

func TestCloneForUpdateIsIndependent(t *testing.T) {
	root := NewRoot(buildSample())
	clone := root.CloneForUpdate()
	assert.Equal(t, root.Text(), clone.Text())

	clone.SpliceChildren(0, 1, []GreenChild{{Token: NewGreenToken(Ident, "z")}})
	assert.NotEqual(t, root.Text(), clone.Text())
	assert.Equal(t, "a.b = 1", root.Text(), "splicing the clone must not affect the original")
}

func TestSpliceChildrenUpdatesLength(t *testing.T) {
	root := NewRoot(buildSample())
	root.SpliceChildren(4, 5, []GreenChild{{Token: NewGreenToken(Integer, "42")}})
	assert.Equal(t, "a.b = 42", root.Text())
}

// TestSpliceChildrenLeavesUntouchedSubtreeStructurallyIdentical checks
// that splicing one child doesn't just leave its siblings' text alone
// (TestCloneForUpdateThenSplicePreservesSiblings in the parser package
// already checks that) but leaves their full Kind/Children shape
// byte-for-byte identical, using go-cmp's structural diff instead of a
// string comparison so a regression that reshuffles node kinds while
// preserving text would still be caught.
func TestSpliceChildrenLeavesUntouchedSubtreeStructurallyIdentical(t *testing.T) {
	root := NewRoot(buildSample())
	before := snapshotOf(root.Children()[0]) // the untouched ident_group

	clone := root.CloneForUpdate()
	clone.SpliceChildren(4, 5, []GreenChild{{Token: NewGreenToken(Integer, "42")}})
	after := snapshotOf(clone.Children()[0])

	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("untouched sibling subtree changed shape (-before +after):\n%s", diff)
	}
}
