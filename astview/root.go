package astview

import (
	"github.com/juju/errors"

	"github.com/cybertec-plsql/plsqlcst/syntax"
)

// Root wraps the single Root node every parse produces.
type Root struct{ syntax *syntax.RedNode }

func (r Root) Syntax() *syntax.RedNode { return r.syntax }

func CanCastRoot(kind syntax.Kind) bool { return kind == syntax.Root }

func CastRoot(n *syntax.RedNode) (Root, bool) {
	return cast(n, syntax.Root, func(n *syntax.RedNode) Root { return Root{n} })
}

// NewRoot validates n is a Root node and wraps it, annotating the error
// with the node's own kind when it is not — a malformed call site (a
// Block or Expression handed in directly, say) is a programmer error
// this catches at the boundary instead of deep inside some accessor.
func NewRoot(n *syntax.RedNode) (Root, error) {
	r, ok := CastRoot(n)
	if !ok {
		if err := mustSyntax(n, "root"); err != nil {
			return Root{}, errors.Trace(err)
		}
		return Root{}, errors.Errorf("astview: expected Root, got %v", n.Kind())
	}
	return r, nil
}

// Procedure and the accessors below it each return the first direct child
// of Root with the matching node kind, or false if Root has none.
func (r Root) Procedure() (Procedure, bool) {
	return firstChild(r.syntax, syntax.Procedure, func(n *syntax.RedNode) Procedure { return Procedure{n} })
}

func (r Root) Function() (Function, bool) {
	return firstChild(r.syntax, syntax.Function, func(n *syntax.RedNode) Function { return Function{n} })
}

func (r Root) Package() (Package, bool) {
	return firstChild(r.syntax, syntax.Package, func(n *syntax.RedNode) Package { return Package{n} })
}

func (r Root) Trigger() (Trigger, bool) {
	return firstChild(r.syntax, syntax.Trigger, func(n *syntax.RedNode) Trigger { return Trigger{n} })
}

func (r Root) View() (View, bool) {
	return firstChild(r.syntax, syntax.View, func(n *syntax.RedNode) View { return View{n} })
}

func (r Root) Table() (Table, bool) {
	return firstChild(r.syntax, syntax.Table, func(n *syntax.RedNode) Table { return Table{n} })
}

func (r Root) Sequence() (Sequence, bool) {
	return firstChild(r.syntax, syntax.Sequence, func(n *syntax.RedNode) Sequence { return Sequence{n} })
}

func (r Root) Block() (Block, bool) {
	return firstChild(r.syntax, syntax.Block, func(n *syntax.RedNode) Block { return Block{n} })
}

func (r Root) SelectStmt() (SelectStmt, bool) {
	return firstChild(r.syntax, syntax.SelectStmt, func(n *syntax.RedNode) SelectStmt { return SelectStmt{n} })
}

func (r Root) DeleteStmt() (DeleteStmt, bool) {
	return firstChild(r.syntax, syntax.DeleteStmt, func(n *syntax.RedNode) DeleteStmt { return DeleteStmt{n} })
}

func (r Root) UpdateStmt() (UpdateStmt, bool) {
	return firstChild(r.syntax, syntax.UpdateStmt, func(n *syntax.RedNode) UpdateStmt { return UpdateStmt{n} })
}

func (r Root) InsertStmt() (InsertStmt, bool) {
	return firstChild(r.syntax, syntax.InsertStmt, func(n *syntax.RedNode) InsertStmt { return InsertStmt{n} })
}
