package ast

import "strings"

// SimpleTypeExpr names a primitive or a nullary named type / type variable
// spelled as an identifier, e.g. `Int`, `Throwable`, or a lowercase `a`.
type SimpleTypeExpr struct {
	Name string
	Pos  Pos
}

func (s *SimpleTypeExpr) String() string { return s.Name }
func (s *SimpleTypeExpr) Position() Pos  { return s.Pos }
func (s *SimpleTypeExpr) typeExprNode()  {}

// GenericTypeExpr is `Name<Arg1, Arg2, ...>`.
type GenericTypeExpr struct {
	Name string
	Args []TypeExpr
	Pos  Pos
}

func (g *GenericTypeExpr) String() string {
	parts := make([]string, len(g.Args))
	for i, a := range g.Args {
		parts[i] = a.String()
	}
	return g.Name + "<" + strings.Join(parts, ", ") + ">"
}
func (g *GenericTypeExpr) Position() Pos { return g.Pos }
func (g *GenericTypeExpr) typeExprNode() {}

// FuncTypeExpr is `(Param1, ...) -> Return`.
type FuncTypeExpr struct {
	Params []TypeExpr
	Return TypeExpr
	Pos    Pos
}

func (f *FuncTypeExpr) String() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.String()
	}
	return "(" + strings.Join(parts, ", ") + ") -> " + f.Return.String()
}
func (f *FuncTypeExpr) Position() Pos { return f.Pos }
func (f *FuncTypeExpr) typeExprNode() {}

// TupleTypeExpr is `(T1, T2, ...)`.
type TupleTypeExpr struct {
	Elements []TypeExpr
	Pos      Pos
}

func (t *TupleTypeExpr) String() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
func (t *TupleTypeExpr) Position() Pos { return t.Pos }
func (t *TupleTypeExpr) typeExprNode() {}

// NullableTypeExpr is `T?`.
type NullableTypeExpr struct {
	Base TypeExpr
	Pos  Pos
}

func (n *NullableTypeExpr) String() string { return n.Base.String() + "?" }
func (n *NullableTypeExpr) Position() Pos  { return n.Pos }
func (n *NullableTypeExpr) typeExprNode()  {}
