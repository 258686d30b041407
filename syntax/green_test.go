package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ident(s string) *GreenToken { return NewGreenToken(Ident, s) }

func TestGreenTokenLen(t *testing.T) {
	tok := ident("hello")
	assert.Equal(t, 5, tok.Len())
	assert.Equal(t, "hello", tok.Text())
}

func TestGreenNodeLengthIsSumOfChildren(t *testing.T) {
	n := NewGreenNode(Expression, []GreenChild{
		{Token: ident("foo")},
		{Token: NewGreenToken(Whitespace, " ")},
		{Token: ident("bar")},
	})
	require.Equal(t, len("foo bar"), n.Len())
	assert.Equal(t, "foo bar", n.Text())
}

func TestGreenNodeTextIsRecursive(t *testing.T) {
	inner := NewGreenNode(IdentGroup, []GreenChild{{Token: ident("a")}, {Token: NewGreenToken(Dot, ".")}, {Token: ident("b")}})
	outer := NewGreenNode(Expression, []GreenChild{{Node: inner}})
	assert.Equal(t, "a.b", outer.Text())
	assert.Equal(t, len("a.b"), outer.Len())
}
