// Package astview layers typed, total-function accessors over the
// concrete syntax tree in package syntax. Every accessor is a partial
// function: it returns ok == false rather than panicking when the
// underlying subtree is absent or shaped unexpectedly, so callers never
// need to pre-validate a tree built by a tolerant parser before
// querying it.
package astview

import (
	"github.com/juju/errors"

	"github.com/cybertec-plsql/plsqlcst/syntax"
)

// Node is implemented by every typed wrapper in this package; it recovers
// the underlying red-tree node a typed view was cast from.
type Node interface {
	Syntax() *syntax.RedNode
}

// cast builds a T from n via wrap if n is non-nil and has kind want.
func cast[T Node](n *syntax.RedNode, want syntax.Kind, wrap func(*syntax.RedNode) T) (T, bool) {
	var zero T
	if n == nil {
		return zero, false
	}
	if n.Kind() != want {
		return zero, false
	}
	return wrap(n), true
}

// firstChild returns the first child of n that casts to T via wrap.
func firstChild[T Node](n *syntax.RedNode, want syntax.Kind, wrap func(*syntax.RedNode) T) (T, bool) {
	var zero T
	if n == nil {
		return zero, false
	}
	for _, c := range n.Children() {
		if v, ok := cast(c, want, wrap); ok {
			return v, true
		}
	}
	return zero, false
}

// allChildren returns every child of n that casts to T via wrap, in
// document order.
func allChildren[T Node](n *syntax.RedNode, want syntax.Kind, wrap func(*syntax.RedNode) T) []T {
	if n == nil {
		return nil
	}
	var out []T
	for _, c := range n.Children() {
		if v, ok := cast(c, want, wrap); ok {
			out = append(out, v)
		}
	}
	return out
}

// mustSyntax returns an annotated error if n is nil, and nil otherwise; it
// guards construction-time invariants that would otherwise surface as a
// nil dereference deep inside an accessor.
func mustSyntax(n *syntax.RedNode, what string) error {
	if n == nil {
		return errors.Errorf("astview: nil %s node", what)
	}
	return nil
}
