package astview

import "github.com/cybertec-plsql/plsqlcst/syntax"

type SelectStmt struct{ syntax *syntax.RedNode }

func (s SelectStmt) Syntax() *syntax.RedNode { return s.syntax }

func CanCastSelectStmt(kind syntax.Kind) bool { return kind == syntax.SelectStmt }

func CastSelectStmt(n *syntax.RedNode) (SelectStmt, bool) {
	return cast(n, syntax.SelectStmt, func(n *syntax.RedNode) SelectStmt { return SelectStmt{n} })
}

func (s SelectStmt) SelectClause() (*syntax.RedNode, bool) {
	return firstChildNode(s.syntax, syntax.SelectClause)
}

func (s SelectStmt) IntoClause() (*syntax.RedNode, bool) {
	return firstChildNode(s.syntax, syntax.IntoClause)
}

func (s SelectStmt) FromClause() (FromClause, bool) {
	return firstChild(s.syntax, syntax.FromClause, func(n *syntax.RedNode) FromClause { return FromClause{n} })
}

func (s SelectStmt) WhereClause() (WhereClause, bool) {
	return firstChild(s.syntax, syntax.WhereClause, func(n *syntax.RedNode) WhereClause { return WhereClause{n} })
}

type FromClause struct{ syntax *syntax.RedNode }

func (f FromClause) Syntax() *syntax.RedNode { return f.syntax }

func CanCastFromClause(kind syntax.Kind) bool { return kind == syntax.FromClause }

func CastFromClause(n *syntax.RedNode) (FromClause, bool) {
	return cast(n, syntax.FromClause, func(n *syntax.RedNode) FromClause { return FromClause{n} })
}

func (f FromClause) TableRefs() []TableRef {
	return allChildren(f.syntax, syntax.TableRef, func(n *syntax.RedNode) TableRef { return TableRef{n} })
}

type TableRef struct{ syntax *syntax.RedNode }

func (t TableRef) Syntax() *syntax.RedNode { return t.syntax }

func CanCastTableRef(kind syntax.Kind) bool { return kind == syntax.TableRef }

func CastTableRef(n *syntax.RedNode) (TableRef, bool) {
	return cast(n, syntax.TableRef, func(n *syntax.RedNode) TableRef { return TableRef{n} })
}

type WhereClause struct{ syntax *syntax.RedNode }

func (w WhereClause) Syntax() *syntax.RedNode { return w.syntax }

func CanCastWhereClause(kind syntax.Kind) bool { return kind == syntax.WhereClause }

func CastWhereClause(n *syntax.RedNode) (WhereClause, bool) {
	return cast(n, syntax.WhereClause, func(n *syntax.RedNode) WhereClause { return WhereClause{n} })
}

func (w WhereClause) Expression() (Expression, bool) {
	return firstChild(w.syntax, syntax.Expression, func(n *syntax.RedNode) Expression { return Expression{n} })
}

type InsertStmt struct{ syntax *syntax.RedNode }

func (s InsertStmt) Syntax() *syntax.RedNode { return s.syntax }

func CanCastInsertStmt(kind syntax.Kind) bool { return kind == syntax.InsertStmt }

func CastInsertStmt(n *syntax.RedNode) (InsertStmt, bool) {
	return cast(n, syntax.InsertStmt, func(n *syntax.RedNode) InsertStmt { return InsertStmt{n} })
}

type DeleteStmt struct{ syntax *syntax.RedNode }

func (s DeleteStmt) Syntax() *syntax.RedNode { return s.syntax }

func CanCastDeleteStmt(kind syntax.Kind) bool { return kind == syntax.DeleteStmt }

func CastDeleteStmt(n *syntax.RedNode) (DeleteStmt, bool) {
	return cast(n, syntax.DeleteStmt, func(n *syntax.RedNode) DeleteStmt { return DeleteStmt{n} })
}

func (s DeleteStmt) TableName() (string, bool) {
	g, ok := firstChild(s.syntax, syntax.IdentGroup, func(n *syntax.RedNode) IdentGroup { return IdentGroup{n} })
	if !ok {
		return "", false
	}
	return g.Name(), true
}

func (s DeleteStmt) WhereClause() (WhereClause, bool) {
	return firstChild(s.syntax, syntax.WhereClause, func(n *syntax.RedNode) WhereClause { return WhereClause{n} })
}

type UpdateStmt struct{ syntax *syntax.RedNode }

func (s UpdateStmt) Syntax() *syntax.RedNode { return s.syntax }

func CanCastUpdateStmt(kind syntax.Kind) bool { return kind == syntax.UpdateStmt }

func CastUpdateStmt(n *syntax.RedNode) (UpdateStmt, bool) {
	return cast(n, syntax.UpdateStmt, func(n *syntax.RedNode) UpdateStmt { return UpdateStmt{n} })
}

func (s UpdateStmt) TableName() (string, bool) {
	g, ok := firstChild(s.syntax, syntax.IdentGroup, func(n *syntax.RedNode) IdentGroup { return IdentGroup{n} })
	if !ok {
		return "", false
	}
	return g.Name(), true
}

func (s UpdateStmt) SetClause() (SetClause, bool) {
	return firstChild(s.syntax, syntax.SetClause, func(n *syntax.RedNode) SetClause { return SetClause{n} })
}

func (s UpdateStmt) WhereClause() (WhereClause, bool) {
	return firstChild(s.syntax, syntax.WhereClause, func(n *syntax.RedNode) WhereClause { return WhereClause{n} })
}

type SetClause struct{ syntax *syntax.RedNode }

func (s SetClause) Syntax() *syntax.RedNode { return s.syntax }

func CanCastSetClause(kind syntax.Kind) bool { return kind == syntax.SetClause }

func CastSetClause(n *syntax.RedNode) (SetClause, bool) {
	return cast(n, syntax.SetClause, func(n *syntax.RedNode) SetClause { return SetClause{n} })
}

func (s SetClause) Assignments() []Expression {
	return allChildren(s.syntax, syntax.Expression, func(n *syntax.RedNode) Expression { return Expression{n} })
}

// firstChildNode returns the first child of n with the given kind,
// unwrapped, for syntax kinds this package doesn't give a dedicated
// typed wrapper to.
func firstChildNode(n *syntax.RedNode, want syntax.Kind) (*syntax.RedNode, bool) {
	if n == nil {
		return nil, false
	}
	for _, c := range n.Children() {
		if c.Kind() == want {
			return c, true
		}
	}
	return nil, false
}
