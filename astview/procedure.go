package astview

import "github.com/cybertec-plsql/plsqlcst/syntax"

type Procedure struct{ syntax *syntax.RedNode }

func (p Procedure) Syntax() *syntax.RedNode { return p.syntax }

func CanCastProcedure(kind syntax.Kind) bool { return kind == syntax.Procedure }

func CastProcedure(n *syntax.RedNode) (Procedure, bool) {
	return cast(n, syntax.Procedure, func(n *syntax.RedNode) Procedure { return Procedure{n} })
}

func (p Procedure) Header() (ProcedureHeader, bool) {
	return firstChild(p.syntax, syntax.ProcedureHeader, func(n *syntax.RedNode) ProcedureHeader { return ProcedureHeader{n} })
}

func (p Procedure) Body() (Block, bool) {
	return firstChild(p.syntax, syntax.Block, func(n *syntax.RedNode) Block { return Block{n} })
}

// Name returns the procedure's qualified name, or "" if the header or
// its identifier is missing (a parse that recovered from a malformed
// header, say).
func (p Procedure) Name() (string, bool) {
	h, ok := p.Header()
	if !ok {
		return "", false
	}
	return h.Identifier()
}

type ProcedureHeader struct{ syntax *syntax.RedNode }

func (h ProcedureHeader) Syntax() *syntax.RedNode { return h.syntax }

func CanCastProcedureHeader(kind syntax.Kind) bool { return kind == syntax.ProcedureHeader }

func CastProcedureHeader(n *syntax.RedNode) (ProcedureHeader, bool) {
	return cast(n, syntax.ProcedureHeader, func(n *syntax.RedNode) ProcedureHeader { return ProcedureHeader{n} })
}

// Identifier returns the header's identifier group text.
func (h ProcedureHeader) Identifier() (string, bool) {
	g, ok := h.IdentGroup()
	if !ok {
		return "", false
	}
	return g.Name(), true
}

func (h ProcedureHeader) IdentGroup() (IdentGroup, bool) {
	return firstChild(h.syntax, syntax.IdentGroup, func(n *syntax.RedNode) IdentGroup { return IdentGroup{n} })
}

func (h ProcedureHeader) ParamList() (ParamList, bool) {
	return firstChild(h.syntax, syntax.ParamList, func(n *syntax.RedNode) ParamList { return ParamList{n} })
}

type ParamList struct{ syntax *syntax.RedNode }

func (l ParamList) Syntax() *syntax.RedNode { return l.syntax }

func CanCastParamList(kind syntax.Kind) bool { return kind == syntax.ParamList }

func CastParamList(n *syntax.RedNode) (ParamList, bool) {
	return cast(n, syntax.ParamList, func(n *syntax.RedNode) ParamList { return ParamList{n} })
}

func (l ParamList) Params() []Param {
	return allChildren(l.syntax, syntax.Param, func(n *syntax.RedNode) Param { return Param{n} })
}

type Param struct{ syntax *syntax.RedNode }

func (p Param) Syntax() *syntax.RedNode { return p.syntax }

func CanCastParam(kind syntax.Kind) bool { return kind == syntax.Param }

func CastParam(n *syntax.RedNode) (Param, bool) {
	return cast(n, syntax.Param, func(n *syntax.RedNode) Param { return Param{n} })
}

// Name returns the parameter's name, its first non-trivia leaf token
// (parseParam bumps the name directly rather than wrapping it in an
// IdentGroup).
func (p Param) Name() (string, bool) {
	for _, el := range p.syntax.ChildrenWithTokens() {
		switch {
		case el.Token != nil:
			if el.Token.Kind() == syntax.Whitespace || el.Token.Kind() == syntax.Comment {
				continue
			}
			return el.Token.Text(), true
		case el.Node != nil:
			return el.Node.Text(), true
		}
	}
	return "", false
}

type Function struct{ syntax *syntax.RedNode }

func (f Function) Syntax() *syntax.RedNode { return f.syntax }

func CanCastFunction(kind syntax.Kind) bool { return kind == syntax.Function }

func CastFunction(n *syntax.RedNode) (Function, bool) {
	return cast(n, syntax.Function, func(n *syntax.RedNode) Function { return Function{n} })
}

func (f Function) Header() (FunctionHeader, bool) {
	return firstChild(f.syntax, syntax.FunctionHeader, func(n *syntax.RedNode) FunctionHeader { return FunctionHeader{n} })
}

func (f Function) Body() (Block, bool) {
	return firstChild(f.syntax, syntax.Block, func(n *syntax.RedNode) Block { return Block{n} })
}

type FunctionHeader struct{ syntax *syntax.RedNode }

func (h FunctionHeader) Syntax() *syntax.RedNode { return h.syntax }

func CanCastFunctionHeader(kind syntax.Kind) bool { return kind == syntax.FunctionHeader }

func CastFunctionHeader(n *syntax.RedNode) (FunctionHeader, bool) {
	return cast(n, syntax.FunctionHeader, func(n *syntax.RedNode) FunctionHeader { return FunctionHeader{n} })
}

func (h FunctionHeader) Identifier() (string, bool) {
	g, ok := firstChild(h.syntax, syntax.IdentGroup, func(n *syntax.RedNode) IdentGroup { return IdentGroup{n} })
	if !ok {
		return "", false
	}
	return g.Name(), true
}

type Package struct{ syntax *syntax.RedNode }

func (pk Package) Syntax() *syntax.RedNode { return pk.syntax }

func CanCastPackage(kind syntax.Kind) bool { return kind == syntax.Package }

func CastPackage(n *syntax.RedNode) (Package, bool) {
	return cast(n, syntax.Package, func(n *syntax.RedNode) Package { return Package{n} })
}

func (pk Package) Procedures() []Procedure {
	return allChildren(pk.syntax, syntax.Procedure, func(n *syntax.RedNode) Procedure { return Procedure{n} })
}

func (pk Package) Functions() []Function {
	return allChildren(pk.syntax, syntax.Function, func(n *syntax.RedNode) Function { return Function{n} })
}

type Trigger struct{ syntax *syntax.RedNode }

func (t Trigger) Syntax() *syntax.RedNode { return t.syntax }

func CanCastTrigger(kind syntax.Kind) bool { return kind == syntax.Trigger }

func CastTrigger(n *syntax.RedNode) (Trigger, bool) {
	return cast(n, syntax.Trigger, func(n *syntax.RedNode) Trigger { return Trigger{n} })
}

func (t Trigger) Header() (TriggerHeader, bool) {
	return firstChild(t.syntax, syntax.TriggerHeader, func(n *syntax.RedNode) TriggerHeader { return TriggerHeader{n} })
}

func (t Trigger) Body() (Block, bool) {
	return firstChild(t.syntax, syntax.Block, func(n *syntax.RedNode) Block { return Block{n} })
}

type TriggerHeader struct{ syntax *syntax.RedNode }

func (h TriggerHeader) Syntax() *syntax.RedNode { return h.syntax }

func CanCastTriggerHeader(kind syntax.Kind) bool { return kind == syntax.TriggerHeader }

func CastTriggerHeader(n *syntax.RedNode) (TriggerHeader, bool) {
	return cast(n, syntax.TriggerHeader, func(n *syntax.RedNode) TriggerHeader { return TriggerHeader{n} })
}

type View struct{ syntax *syntax.RedNode }

func (v View) Syntax() *syntax.RedNode { return v.syntax }

func CanCastView(kind syntax.Kind) bool { return kind == syntax.View }

func CastView(n *syntax.RedNode) (View, bool) {
	return cast(n, syntax.View, func(n *syntax.RedNode) View { return View{n} })
}

func (v View) SelectStmt() (SelectStmt, bool) {
	return firstChild(v.syntax, syntax.SelectStmt, func(n *syntax.RedNode) SelectStmt { return SelectStmt{n} })
}

type Table struct{ syntax *syntax.RedNode }

func (t Table) Syntax() *syntax.RedNode { return t.syntax }

func CanCastTable(kind syntax.Kind) bool { return kind == syntax.Table }

func CastTable(n *syntax.RedNode) (Table, bool) {
	return cast(n, syntax.Table, func(n *syntax.RedNode) Table { return Table{n} })
}

func (t Table) ColumnDefs() []ColumnDef {
	return allChildren(t.syntax, syntax.ColumnDef, func(n *syntax.RedNode) ColumnDef { return ColumnDef{n} })
}

type ColumnDef struct{ syntax *syntax.RedNode }

func (c ColumnDef) Syntax() *syntax.RedNode { return c.syntax }

func CanCastColumnDef(kind syntax.Kind) bool { return kind == syntax.ColumnDef }

func CastColumnDef(n *syntax.RedNode) (ColumnDef, bool) {
	return cast(n, syntax.ColumnDef, func(n *syntax.RedNode) ColumnDef { return ColumnDef{n} })
}

type Sequence struct{ syntax *syntax.RedNode }

func (s Sequence) Syntax() *syntax.RedNode { return s.syntax }

func CanCastSequence(kind syntax.Kind) bool { return kind == syntax.Sequence }

func CastSequence(n *syntax.RedNode) (Sequence, bool) {
	return cast(n, syntax.Sequence, func(n *syntax.RedNode) Sequence { return Sequence{n} })
}
