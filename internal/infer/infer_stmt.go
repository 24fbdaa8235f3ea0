package infer

import (
	"github.com/taylorlang/semantic/internal/ast"
	"github.com/taylorlang/semantic/internal/diagnostic"
	"github.com/taylorlang/semantic/internal/types"
)

// CheckStmt visits one block-level statement, extending c.Env in place.
// The environment is a single mutable stack rather than a functional
// value here, so extension is a side effect on c.Env instead of a
// returned copy.
func (c *Collector) CheckStmt(stmt ast.Stmt) *types.ConstraintSet {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		return c.checkVarDecl(s)
	case *ast.Assignment:
		return c.checkAssignment(s)
	case *ast.ExprStmt:
		_, cs := c.Synthesize(s.Expr)
		return cs
	case *ast.TypeDecl:
		// Type declarations are hoisted into the global table before any
		// body is walked; encountering one here (e.g. a local type
		// declaration inside a block) is a no-op re-visit.
		return types.EmptyConstraintSet()
	case *ast.FunctionDecl:
		return c.checkNestedFunctionDecl(s)
	default:
		c.Diags.Report(diagnostic.NewInvalidOperation("statement", stringStringer(stmt.String()), locOf(stmt)))
		return types.EmptyConstraintSet()
	}
}

func (c *Collector) checkVarDecl(v *ast.VarDecl) *types.ConstraintSet {
	var declared types.Type
	if v.Type != nil {
		resolved, diag := ResolveTypeExpr(v.Type, c.Env, nil)
		if diag != nil {
			c.Diags.Report(diag)
		} else {
			declared = resolved
		}
	}

	var valueT types.Type
	var cs *types.ConstraintSet
	if declared != nil {
		cs = c.Check(v.Value, declared)
		valueT = declared
	} else {
		valueT, cs = c.Synthesize(v.Value)
	}

	if err := c.Env.DeclareVariable(v.Name, valueT, v.Mutable); err != nil {
		c.Diags.Report(diagnostic.NewDuplicateDefinition("variable", v.Name, locOf(v)))
	}
	return cs
}

func (c *Collector) checkAssignment(a *ast.Assignment) *types.ConstraintSet {
	valueT, cs := c.Synthesize(a.Value)
	if err := c.Env.Assign(a.Name, valueT); err != nil {
		c.Diags.Report(diagnostic.NewInvalidOperation("assignment", exprKindStringer{a.Value}, locOf(a)))
	}
	return cs
}

// checkNestedFunctionDecl handles a FunctionDecl appearing inside a block
// rather than at top level. The orchestrator already hoists top-level
// declarations into the global namespace before any body is checked; a
// nested declaration instead extends the current scope directly with a
// monomorphic function type (no let-polymorphism for nested declarations,
// mirroring the no-generalization rule for lambdas).
func (c *Collector) checkNestedFunctionDecl(f *ast.FunctionDecl) *types.ConstraintSet {
	typeParams := make(map[string]bool, len(f.TypeParams))
	for _, p := range f.TypeParams {
		typeParams[p] = true
	}

	paramTypes := make([]types.Type, len(f.Params))
	for i, p := range f.Params {
		if p.Type != nil {
			resolved, diag := ResolveTypeExpr(p.Type, c.Env, typeParams)
			if diag != nil {
				c.Diags.Report(diag)
				paramTypes[i] = types.NewTypeVar()
				continue
			}
			paramTypes[i] = resolved
		} else {
			paramTypes[i] = types.NewTypeVar()
		}
	}

	var returnT types.Type = types.NewTypeVar()
	if f.ReturnType != nil {
		resolved, diag := ResolveTypeExpr(f.ReturnType, c.Env, typeParams)
		if diag != nil {
			c.Diags.Report(diag)
		} else {
			returnT = resolved
		}
	}

	fnType := &types.Function{Params: paramTypes, Return: returnT}
	if err := c.Env.DeclareVariable(f.Name, fnType, false); err != nil {
		c.Diags.Report(diagnostic.NewDuplicateDefinition("function", f.Name, locOf(f)))
	}

	c.Env.PushScope()
	defer c.Env.PopScope()
	for i, p := range f.Params {
		if err := c.Env.DeclareVariable(p.Name, paramTypes[i], false); err != nil {
			c.Diags.Report(diagnostic.NewDuplicateDefinition("parameter", p.Name, locOf(f)))
		}
	}
	c.Env.PushEnclosingReturn(returnT)
	defer c.Env.PopEnclosingReturn()
	return c.Check(f.Body, returnT)
}
