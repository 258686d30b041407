package syntax

import "strings"

// GreenToken is an immutable leaf: a Kind and its exact source text. Two
// GreenTokens with equal Kind and Text are interchangeable; nothing in
// this package hash-conses them, but callers that want sharing across
// parses may keep their own intern table keyed on (Kind, Text) since
// GreenToken is safe to compare structurally and safe to share.
type GreenToken struct {
	kind Kind
	text string
}

// NewGreenToken builds a leaf token. It is the only way to introduce text
// into a tree, which is what makes byte completeness (invariant 1)
// checkable: every byte of input ends up in exactly one GreenToken.
func NewGreenToken(kind Kind, text string) *GreenToken {
	return &GreenToken{kind: kind, text: text}
}

func (t *GreenToken) Kind() Kind    { return t.kind }
func (t *GreenToken) Text() string  { return t.text }
func (t *GreenToken) Len() int      { return len(t.text) }
func (t *GreenToken) isGreenElement() {}

// GreenChild is one element of a GreenNode's child list: exactly one of
// Node or Token is non-nil.
type GreenChild struct {
	Node  *GreenNode
	Token *GreenToken
}

func (c GreenChild) Len() int {
	if c.Node != nil {
		return c.Node.Len()
	}
	return c.Token.Len()
}

func (c GreenChild) Kind() Kind {
	if c.Node != nil {
		return c.Node.Kind()
	}
	return c.Token.Kind()
}

func (c GreenChild) Text() string {
	if c.Node != nil {
		return c.Node.Text()
	}
	return c.Token.Text()
}

// GreenNode is an immutable interior node: a Kind and an ordered list of
// children, each either a nested GreenNode or a GreenToken. Length is
// cached at construction as the sum of every child's length, which is
// what lets Len() be O(1) instead of a tree walk.
type GreenNode struct {
	kind     Kind
	children []GreenChild
	length   int
}

// NewGreenNode builds an interior node from an ordered child list. The
// length invariant (a node's length equals the sum of its children's
// lengths) holds by construction: there is no other way to set length.
func NewGreenNode(kind Kind, children []GreenChild) *GreenNode {
	n := &GreenNode{kind: kind, children: children}
	for _, c := range children {
		n.length += c.Len()
	}
	return n
}

func (n *GreenNode) Kind() Kind              { return n.kind }
func (n *GreenNode) Len() int                { return n.length }
func (n *GreenNode) Children() []GreenChild  { return n.children }
func (n *GreenNode) isGreenElement()         {}

// Text reconstructs this node's full source text by concatenating every
// descendant token's text in order. It is the operation invariant 1 and
// testable property 2 are stated in terms of.
func (n *GreenNode) Text() string {
	var b strings.Builder
	b.Grow(n.length)
	writeGreenText(&b, n)
	return b.String()
}

func writeGreenText(b *strings.Builder, n *GreenNode) {
	for _, c := range n.children {
		if c.Node != nil {
			writeGreenText(b, c.Node)
		} else {
			b.WriteString(c.Token.Text())
		}
	}
}

// GreenElement is implemented by both *GreenNode and *GreenToken, so code
// that walks a raw child list (before deciding node-vs-token) can hold
// either without an interface-typed GreenChild wrapper.
type GreenElement interface {
	Kind() Kind
	Text() string
	Len() int
	isGreenElement()
}
