package astview

import "github.com/cybertec-plsql/plsqlcst/syntax"

type FunctionInvocation struct{ syntax *syntax.RedNode }

func (f FunctionInvocation) Syntax() *syntax.RedNode { return f.syntax }

func CanCastFunctionInvocation(kind syntax.Kind) bool { return kind == syntax.FunctionInvocation }

func CastFunctionInvocation(n *syntax.RedNode) (FunctionInvocation, bool) {
	return cast(n, syntax.FunctionInvocation, func(n *syntax.RedNode) FunctionInvocation { return FunctionInvocation{n} })
}

func (f FunctionInvocation) Ident() (IdentGroup, bool) {
	return firstChild(f.syntax, syntax.IdentGroup, func(n *syntax.RedNode) IdentGroup { return IdentGroup{n} })
}

func (f FunctionInvocation) Arguments() []Argument {
	l, ok := firstChild(f.syntax, syntax.ArgumentList, func(n *syntax.RedNode) ArgumentList { return ArgumentList{n} })
	if !ok {
		return nil
	}
	return l.Arguments()
}

type ArgumentList struct{ syntax *syntax.RedNode }

func (l ArgumentList) Syntax() *syntax.RedNode { return l.syntax }

func CanCastArgumentList(kind syntax.Kind) bool { return kind == syntax.ArgumentList }

func CastArgumentList(n *syntax.RedNode) (ArgumentList, bool) {
	return cast(n, syntax.ArgumentList, func(n *syntax.RedNode) ArgumentList { return ArgumentList{n} })
}

func (l ArgumentList) Arguments() []Argument {
	return allChildren(l.syntax, syntax.Argument, func(n *syntax.RedNode) Argument { return Argument{n} })
}

type Argument struct{ syntax *syntax.RedNode }

func (a Argument) Syntax() *syntax.RedNode { return a.syntax }

func CanCastArgument(kind syntax.Kind) bool { return kind == syntax.Argument }

func CastArgument(n *syntax.RedNode) (Argument, bool) {
	return cast(n, syntax.Argument, func(n *syntax.RedNode) Argument { return Argument{n} })
}

// Text returns the argument expression's source text verbatim.
func (a Argument) Text() string { return a.syntax.Text() }
