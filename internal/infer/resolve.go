package infer

import (
	"github.com/taylorlang/semantic/internal/ast"
	"github.com/taylorlang/semantic/internal/diagnostic"
	"github.com/taylorlang/semantic/internal/tenv"
	"github.com/taylorlang/semantic/internal/types"
)

func locOfTypeExpr(te ast.TypeExpr) *diagnostic.Location {
	pos := te.Position()
	return &diagnostic.Location{Line: pos.Line, Column: pos.Column, File: pos.File, Valid: true}
}

// ResolveTypeExpr converts a source-level type annotation into an
// internal types.Type, the AST->internal-type conversion needed before
// checking a declaration's body. typeParams names the type parameters in
// scope (a function's or union's own declared parameters), which resolve
// to Named references rather than concrete or unknown-primitive types.
func ResolveTypeExpr(te ast.TypeExpr, env *tenv.Environment, typeParams map[string]bool) (types.Type, *diagnostic.Diagnostic) {
	switch t := te.(type) {
	case *ast.SimpleTypeExpr:
		if typeParams[t.Name] {
			return &types.Named{Name: t.Name}, nil
		}
		if types.BuiltinPrimitiveNames[t.Name] {
			return &types.Primitive{Name: t.Name}, nil
		}
		if t.Name == "Throwable" {
			return types.Throwable, nil
		}
		if def, ok := env.LookupType(t.Name); ok {
			if len(def.TypeParams) != 0 {
				return nil, diagnostic.NewArityMismatch("type "+t.Name, len(def.TypeParams), 0, locOfTypeExpr(te))
			}
			return &types.Union{Name: t.Name}, nil
		}
		return nil, diagnostic.NewUnknownPrimitiveType(t.Name, locOfTypeExpr(te))

	case *ast.GenericTypeExpr:
		args := make([]types.Type, len(t.Args))
		for i, a := range t.Args {
			resolved, diag := ResolveTypeExpr(a, env, typeParams)
			if diag != nil {
				return nil, diag
			}
			args[i] = resolved
		}
		if def, ok := env.LookupType(t.Name); ok {
			if len(def.TypeParams) != len(args) {
				return nil, diagnostic.NewArityMismatch("type "+t.Name, len(def.TypeParams), len(args), locOfTypeExpr(te))
			}
			return &types.Union{Name: t.Name, TypeArgs: args}, nil
		}
		return &types.Generic{Name: t.Name, Args: args}, nil

	case *ast.FuncTypeExpr:
		params := make([]types.Type, len(t.Params))
		for i, p := range t.Params {
			resolved, diag := ResolveTypeExpr(p, env, typeParams)
			if diag != nil {
				return nil, diag
			}
			params[i] = resolved
		}
		ret, diag := ResolveTypeExpr(t.Return, env, typeParams)
		if diag != nil {
			return nil, diag
		}
		return &types.Function{Params: params, Return: ret}, nil

	case *ast.TupleTypeExpr:
		elems := make([]types.Type, len(t.Elements))
		for i, e := range t.Elements {
			resolved, diag := ResolveTypeExpr(e, env, typeParams)
			if diag != nil {
				return nil, diag
			}
			elems[i] = resolved
		}
		return &types.Tuple{Elements: elems}, nil

	case *ast.NullableTypeExpr:
		base, diag := ResolveTypeExpr(t.Base, env, typeParams)
		if diag != nil {
			return nil, diag
		}
		return &types.Nullable{Base: base}, nil

	default:
		return nil, diagnostic.NewUnknownPrimitiveType(te.String(), locOfTypeExpr(te))
	}
}
