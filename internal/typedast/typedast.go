// Package typedast is the produced side of the core's public contract:
// the output tree in which every expression and top-level declaration
// carries its final, substitution-applied type. There is no separate
// core IR here, so the typed tree wraps the same ast.Node values it was
// built from rather than re-deriving a parallel typed node per AST shape.
package typedast

import (
	"github.com/taylorlang/semantic/internal/ast"
	"github.com/taylorlang/semantic/internal/types"
)

// TypedExpression wraps an expression AST node with its final resolved
// type.
type TypedExpression struct {
	Expr ast.Expr
	Type types.Type
}

// TypedItem is one top-level declaration in a typed program.
type TypedItem interface {
	itemNode()
}

// TypedValueDecl is a top-level `val`/`var` with its resolved type.
type TypedValueDecl struct {
	Decl  *ast.VarDecl
	Type  types.Type
	Value *TypedExpression
}

func (*TypedValueDecl) itemNode() {}

// TypedFunctionDecl is a top-level function declaration with its fully
// resolved signature and checked body.
type TypedFunctionDecl struct {
	Decl       *ast.FunctionDecl
	ParamTypes []types.Type
	ReturnType types.Type
	Body       *TypedExpression
}

func (*TypedFunctionDecl) itemNode() {}

// TypedTypeDecl is a type (union) declaration; it carries no inferred
// type of its own; it is retained so a consumer can recover declaration
// order and source position.
type TypedTypeDecl struct {
	Decl *ast.TypeDecl
}

func (*TypedTypeDecl) itemNode() {}

// TypedExprItem is a bare top-level expression statement (evaluated for
// effect, e.g. `println("hi")` at the top level).
type TypedExprItem struct {
	Stmt *ast.ExprStmt
	Expr *TypedExpression
}

func (*TypedExprItem) itemNode() {}

// TypedProgram is the fully checked program: the typed AST the core
// produces.
type TypedProgram struct {
	Items []TypedItem
}
