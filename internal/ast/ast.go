// Package ast defines the AST contract the semantic core consumes.
//
// How these trees are produced (lexing, parsing) is outside this package's
// concern: nodes are plain, immutable, sum-typed data that a parser (or a
// test fixture builder) constructs and the core walks read-only.
package ast

import (
	"fmt"
	"strings"
)

// Pos is a source location. File and Line/Column may be zero when unknown;
// callers must tolerate that and still produce a useful diagnostic.
type Pos struct {
	Line   int
	Column int
	File   string
}

func (p Pos) String() string {
	if p.File == "" && p.Line == 0 {
		return "<unknown>"
	}
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// Span is a half-open source range.
type Span struct {
	Start Pos
	End   Pos
}

// Node is the base interface implemented by every AST node.
type Node interface {
	String() string
	Position() Pos
}

// Expr is an expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a top-level or block statement node.
type Stmt interface {
	Node
	stmtNode()
}

// TypeExpr is a type annotation as written in source (before internal
// resolution into types.Type).
type TypeExpr interface {
	Node
	typeExprNode()
}

// Pattern is a pattern-matching pattern node.
type Pattern interface {
	Node
	patternNode()
}

// Program is the root of a parsed compilation unit.
type Program struct {
	Decls []Stmt
	Pos   Pos
}

func (p *Program) String() string {
	parts := make([]string, len(p.Decls))
	for i, d := range p.Decls {
		parts[i] = d.String()
	}
	return strings.Join(parts, "\n")
}
func (p *Program) Position() Pos { return p.Pos }

// ---- Literals ----------------------------------------------------------

type LiteralKind int

const (
	IntLit LiteralKind = iota
	FloatLit
	StringLit
	BoolLit
	NullLit
)

// Literal is an int/float/string/bool/null literal.
type Literal struct {
	Kind  LiteralKind
	Value interface{}
	Pos   Pos
}

func (l *Literal) String() string { return fmt.Sprintf("%v", l.Value) }
func (l *Literal) Position() Pos  { return l.Pos }
func (l *Literal) exprNode()      {}

// TupleLit is a tuple literal `(e1, e2, ...)`.
type TupleLit struct {
	Elements []Expr
	Pos      Pos
}

func (t *TupleLit) String() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
func (t *TupleLit) Position() Pos { return t.Pos }
func (t *TupleLit) exprNode()     {}

// Identifier is a variable reference.
type Identifier struct {
	Name string
	Pos  Pos
}

func (i *Identifier) String() string { return i.Name }
func (i *Identifier) Position() Pos  { return i.Pos }
func (i *Identifier) exprNode()      {}

// ---- Operators ----------------------------------------------------------

// BinOp enumerates the finite set of binary operators the core understands.
type BinOp int

const (
	OpAdd BinOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpLt
	OpGt
	OpLe
	OpGe
	OpEq
	OpNe
	OpAnd
	OpOr
)

var binOpNames = map[BinOp]string{
	OpAdd: "+", OpSub: "-", OpMul: "*", OpDiv: "/", OpMod: "%",
	OpLt: "<", OpGt: ">", OpLe: "<=", OpGe: ">=",
	OpEq: "==", OpNe: "!=", OpAnd: "&&", OpOr: "||",
}

func (b BinOp) String() string {
	if s, ok := binOpNames[b]; ok {
		return s
	}
	return "?"
}

// BinaryOp is a binary operator application.
type BinaryOp struct {
	Op    BinOp
	Left  Expr
	Right Expr
	Pos   Pos
}

func (b *BinaryOp) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right)
}
func (b *BinaryOp) Position() Pos { return b.Pos }
func (b *BinaryOp) exprNode()     {}

// UnOp enumerates the unary operators.
type UnOp int

const (
	OpNeg UnOp = iota
	OpNot
)

func (u UnOp) String() string {
	if u == OpNeg {
		return "-"
	}
	return "!"
}

// UnaryOp is a unary operator application.
type UnaryOp struct {
	Op      UnOp
	Operand Expr
	Pos     Pos
}

func (u *UnaryOp) String() string { return fmt.Sprintf("(%s%s)", u.Op, u.Operand) }
func (u *UnaryOp) Position() Pos  { return u.Pos }
func (u *UnaryOp) exprNode()      {}

// ---- Control flow ---------------------------------------------------------

// IfExpression is `if (cond) then else else`.
type IfExpression struct {
	Cond Expr
	Then Expr
	Else Expr // nil if omitted
	Pos  Pos
}

func (i *IfExpression) String() string {
	if i.Else == nil {
		return fmt.Sprintf("(if %s then %s)", i.Cond, i.Then)
	}
	return fmt.Sprintf("(if %s then %s else %s)", i.Cond, i.Then, i.Else)
}
func (i *IfExpression) Position() Pos { return i.Pos }
func (i *IfExpression) exprNode()     {}

// Case is one arm of a match expression.
type Case struct {
	Pattern Pattern
	Guard   Expr // optional
	Body    Expr
	Pos     Pos
}

// MatchExpression is a pattern match over a scrutinee.
type MatchExpression struct {
	Scrutinee Expr
	Cases     []*Case
	Pos       Pos
}

func (m *MatchExpression) String() string {
	parts := make([]string, len(m.Cases))
	for i, c := range m.Cases {
		parts[i] = fmt.Sprintf("%s => %s", c.Pattern, c.Body)
	}
	return fmt.Sprintf("(match %s { %s })", m.Scrutinee, strings.Join(parts, "; "))
}
func (m *MatchExpression) Position() Pos { return m.Pos }
func (m *MatchExpression) exprNode()     {}

// BlockExpression is a sequence of statements with an optional trailing
// expression; the block's type is that expression's type, or Unit.
type BlockExpression struct {
	Statements []Stmt
	Final      Expr // nil => Unit
	Pos        Pos
}

func (b *BlockExpression) String() string {
	parts := make([]string, 0, len(b.Statements)+1)
	for _, s := range b.Statements {
		parts = append(parts, s.String())
	}
	if b.Final != nil {
		parts = append(parts, b.Final.String())
	}
	return "{ " + strings.Join(parts, "; ") + " }"
}
func (b *BlockExpression) Position() Pos { return b.Pos }
func (b *BlockExpression) exprNode()     {}

// ---- Calls ----------------------------------------------------------------

// FunctionCall is an application of a named function to arguments.
type FunctionCall struct {
	Target Expr // usually *Identifier
	Args   []Expr
	Pos    Pos
}

func (f *FunctionCall) String() string {
	parts := make([]string, len(f.Args))
	for i, a := range f.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", f.Target, strings.Join(parts, ", "))
}
func (f *FunctionCall) Position() Pos { return f.Pos }
func (f *FunctionCall) exprNode()     {}

// ConstructorCall builds a union variant value: `Name(arg1, ...)`.
type ConstructorCall struct {
	Name string
	Args []Expr
	Pos  Pos
}

func (c *ConstructorCall) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", c.Name, strings.Join(parts, ", "))
}
func (c *ConstructorCall) Position() Pos { return c.Pos }
func (c *ConstructorCall) exprNode()     {}

// LambdaParam is one parameter of a lambda.
type LambdaParam struct {
	Name string
	Type TypeExpr // optional annotation
	Pos  Pos
}

// LambdaExpression is an anonymous function; never generalized.
type LambdaExpression struct {
	Params []*LambdaParam
	Body   Expr
	Pos    Pos
}

func (l *LambdaExpression) String() string {
	names := make([]string, len(l.Params))
	for i, p := range l.Params {
		names[i] = p.Name
	}
	return fmt.Sprintf("(\\%s -> %s)", strings.Join(names, ", "), l.Body)
}
func (l *LambdaExpression) Position() Pos { return l.Pos }
func (l *LambdaExpression) exprNode()     {}

// CatchClause is one `catch pattern => body` arm of a try-expression.
type CatchClause struct {
	Pattern Pattern
	Body    Expr
	Pos     Pos
}

// TryExpression models `try { body } catch { ... }`; legal only inside a
// function whose declared return type is Result<T, E>.
type TryExpression struct {
	Body    Expr
	Catches []*CatchClause
	Pos     Pos
}

func (t *TryExpression) String() string {
	return fmt.Sprintf("(try %s)", t.Body)
}
func (t *TryExpression) Position() Pos { return t.Pos }
func (t *TryExpression) exprNode()     {}

// ---- Statements -------------------------------------------------------

// VarDecl is a `val`/`var` binding.
type VarDecl struct {
	Name    string
	Mutable bool
	Type    TypeExpr // optional annotation
	Value   Expr
	Pos     Pos
}

func (v *VarDecl) String() string {
	kw := "val"
	if v.Mutable {
		kw = "var"
	}
	return fmt.Sprintf("%s %s = %s", kw, v.Name, v.Value)
}
func (v *VarDecl) Position() Pos { return v.Pos }
func (v *VarDecl) stmtNode()     {}

// Assignment is `name = value` against an existing mutable binding.
type Assignment struct {
	Name  string
	Value Expr
	Pos   Pos
}

func (a *Assignment) String() string { return fmt.Sprintf("%s = %s", a.Name, a.Value) }
func (a *Assignment) Position() Pos  { return a.Pos }
func (a *Assignment) stmtNode()      {}

// ExprStmt wraps an expression used in statement position (e.g. inside a
// block, evaluated for effect).
type ExprStmt struct {
	Expr Expr
	Pos  Pos
}

func (e *ExprStmt) String() string { return e.Expr.String() }
func (e *ExprStmt) Position() Pos  { return e.Pos }
func (e *ExprStmt) stmtNode()      {}

// VariantDecl is one constructor of a union type declaration.
type VariantDecl struct {
	Name   string
	Fields []TypeExpr // empty => nullary constructor
	Pos    Pos
}

// TypeDecl declares a union (algebraic data) type.
type TypeDecl struct {
	Name       string
	TypeParams []string
	Variants   []*VariantDecl
	Pos        Pos
}

func (t *TypeDecl) String() string {
	names := make([]string, len(t.Variants))
	for i, v := range t.Variants {
		names[i] = v.Name
	}
	return fmt.Sprintf("type %s = %s", t.Name, strings.Join(names, " | "))
}
func (t *TypeDecl) Position() Pos { return t.Pos }
func (t *TypeDecl) stmtNode()     {}

// FuncParam is one declared function parameter.
type FuncParam struct {
	Name string
	Type TypeExpr // optional annotation
	Pos  Pos
}

// FunctionDecl is a top-level function declaration.
type FunctionDecl struct {
	Name       string
	TypeParams []string
	Params     []*FuncParam
	ReturnType TypeExpr // optional annotation
	Body       Expr
	Pos        Pos
}

func (f *FunctionDecl) String() string {
	names := make([]string, len(f.Params))
	for i, p := range f.Params {
		names[i] = p.Name
	}
	return fmt.Sprintf("fn %s(%s) => %s", f.Name, strings.Join(names, ", "), f.Body)
}
func (f *FunctionDecl) Position() Pos { return f.Pos }
func (f *FunctionDecl) stmtNode()     {}
