// Package testsupport provides small AST-construction helpers and a
// registry of named fixture programs, shared between the checker's own
// tests and the taylorcheck CLI's fixture-driven `check`/`repl` commands
// (no parser is in scope, so fixtures stand in for source files).
package testsupport

import "github.com/taylorlang/semantic/internal/ast"

func pos() ast.Pos { return ast.Pos{Line: 1, Column: 1, File: "<fixture>"} }

func Int(v int64) *ast.Literal  { return &ast.Literal{Kind: ast.IntLit, Value: v, Pos: pos()} }
func Float(v float64) *ast.Literal {
	return &ast.Literal{Kind: ast.FloatLit, Value: v, Pos: pos()}
}
func Str(v string) *ast.Literal { return &ast.Literal{Kind: ast.StringLit, Value: v, Pos: pos()} }
func Bool(v bool) *ast.Literal  { return &ast.Literal{Kind: ast.BoolLit, Value: v, Pos: pos()} }
func Null() *ast.Literal        { return &ast.Literal{Kind: ast.NullLit, Pos: pos()} }

func Ident(name string) *ast.Identifier { return &ast.Identifier{Name: name, Pos: pos()} }

func Bin(op ast.BinOp, left, right ast.Expr) *ast.BinaryOp {
	return &ast.BinaryOp{Op: op, Left: left, Right: right, Pos: pos()}
}

func If(cond, then, els ast.Expr) *ast.IfExpression {
	return &ast.IfExpression{Cond: cond, Then: then, Else: els, Pos: pos()}
}

func Block(stmts []ast.Stmt, final ast.Expr) *ast.BlockExpression {
	return &ast.BlockExpression{Statements: stmts, Final: final, Pos: pos()}
}

func Call(target ast.Expr, args ...ast.Expr) *ast.FunctionCall {
	return &ast.FunctionCall{Target: target, Args: args, Pos: pos()}
}

func Ctor(name string, args ...ast.Expr) *ast.ConstructorCall {
	return &ast.ConstructorCall{Name: name, Args: args, Pos: pos()}
}

func Lambda(body ast.Expr, params ...*ast.LambdaParam) *ast.LambdaExpression {
	return &ast.LambdaExpression{Params: params, Body: body, Pos: pos()}
}

func LParam(name string, t ast.TypeExpr) *ast.LambdaParam {
	return &ast.LambdaParam{Name: name, Type: t, Pos: pos()}
}

func Val(name string, value ast.Expr, annotation ast.TypeExpr) *ast.VarDecl {
	return &ast.VarDecl{Name: name, Mutable: false, Type: annotation, Value: value, Pos: pos()}
}

func Var(name string, value ast.Expr, annotation ast.TypeExpr) *ast.VarDecl {
	return &ast.VarDecl{Name: name, Mutable: true, Type: annotation, Value: value, Pos: pos()}
}

func Assign(name string, value ast.Expr) *ast.Assignment {
	return &ast.Assignment{Name: name, Value: value, Pos: pos()}
}

func ExprStmt(e ast.Expr) *ast.ExprStmt { return &ast.ExprStmt{Expr: e, Pos: pos()} }

func FuncParam(name string, t ast.TypeExpr) *ast.FuncParam {
	return &ast.FuncParam{Name: name, Type: t, Pos: pos()}
}

func Func(name string, returnType ast.TypeExpr, body ast.Expr, params ...*ast.FuncParam) *ast.FunctionDecl {
	return &ast.FunctionDecl{Name: name, Params: params, ReturnType: returnType, Body: body, Pos: pos()}
}

func Variant(name string, fields ...ast.TypeExpr) *ast.VariantDecl {
	return &ast.VariantDecl{Name: name, Fields: fields, Pos: pos()}
}

func TypeDecl(name string, typeParams []string, variants ...*ast.VariantDecl) *ast.TypeDecl {
	return &ast.TypeDecl{Name: name, TypeParams: typeParams, Variants: variants, Pos: pos()}
}

func Simple(name string) *ast.SimpleTypeExpr { return &ast.SimpleTypeExpr{Name: name, Pos: pos()} }

func Generic(name string, args ...ast.TypeExpr) *ast.GenericTypeExpr {
	return &ast.GenericTypeExpr{Name: name, Args: args, Pos: pos()}
}

func Program(decls ...ast.Stmt) *ast.Program {
	return &ast.Program{Decls: decls, Pos: pos()}
}

func IdentPattern(name string) *ast.IdentifierPattern {
	return &ast.IdentifierPattern{Name: name, Pos: pos()}
}

func Wildcard() *ast.WildcardPattern { return &ast.WildcardPattern{Pos: pos()} }

func CtorPattern(name string, args ...ast.Pattern) *ast.ConstructorPattern {
	return &ast.ConstructorPattern{Name: name, Args: args, Pos: pos()}
}

func MatchCase(p ast.Pattern, body ast.Expr) *ast.Case {
	return &ast.Case{Pattern: p, Body: body, Pos: pos()}
}

func Match(scrutinee ast.Expr, cases ...*ast.Case) *ast.MatchExpression {
	return &ast.MatchExpression{Scrutinee: scrutinee, Cases: cases, Pos: pos()}
}
