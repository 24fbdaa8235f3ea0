package checker

import (
	"github.com/taylorlang/semantic/internal/ast"
	"github.com/taylorlang/semantic/internal/diagnostic"
	"github.com/taylorlang/semantic/internal/infer"
	"github.com/taylorlang/semantic/internal/tenv"
	"github.com/taylorlang/semantic/internal/typedast"
	"github.com/taylorlang/semantic/internal/types"
	"github.com/taylorlang/semantic/internal/unify"
)

// unifyFailureDiag turns a unify.Failure into the matching diagnostic
// kind.
func unifyFailureDiag(err error) *diagnostic.Diagnostic {
	f, ok := err.(*unify.Failure)
	if !ok {
		return diagnostic.NewInvalidOperation("unify", stringer(err.Error()), nil)
	}
	loc := &diagnostic.Location{Line: f.Loc.Line, Column: f.Loc.Column, File: f.Loc.File, Valid: f.Loc.Valid}
	switch f.Kind {
	case unify.ArityMismatch:
		return diagnostic.NewArityMismatchTypes(f.A, f.B, loc)
	case unify.InfiniteType:
		return diagnostic.NewInfiniteType(f.A, f.B, loc)
	default:
		return diagnostic.NewTypeMismatch(f.A, f.B, loc)
	}
}

type stringer string

func (s stringer) String() string { return string(s) }

// checkFunctionBody checks fd's body against its already-declared
// signature (pass 2), solving the collected constraint set and applying
// the resulting substitution to every tentative type.
func (ck *Checker) checkFunctionBody(fd *ast.FunctionDecl, env *tenv.Environment) (*typedast.TypedFunctionDecl, *diagnostic.Diagnostic) {
	sig, ok := env.LookupFunction(fd.Name)
	if !ok {
		return nil, nil
	}

	diags := diagnostic.NewCollector()
	coll := infer.New(env, diags)

	env.PushScope()
	for i, p := range fd.Params {
		if err := env.DeclareVariable(p.Name, sig.ParamTypes[i], false); err != nil {
			diags.Report(diagnostic.NewDuplicateDefinition("parameter", p.Name, locOf(fd)))
		}
	}
	env.PushEnclosingReturn(sig.ReturnType)

	cs := ck.checkBody(coll, fd.Body, sig.ReturnType)

	env.PopEnclosingReturn()
	_ = env.PopScope()

	sigma, err := unify.Solve(cs)
	if err != nil {
		diags.Report(unifyFailureDiag(err))
		return nil, diags.Finish()
	}

	paramTypes := make([]types.Type, len(sig.ParamTypes))
	for i, pt := range sig.ParamTypes {
		paramTypes[i] = sigma.Apply(pt)
	}
	returnT := sigma.Apply(sig.ReturnType)

	if diags.HasErrors() {
		return nil, diags.Finish()
	}
	return &typedast.TypedFunctionDecl{
		Decl:       fd,
		ParamTypes: paramTypes,
		ReturnType: returnT,
		Body:       &typedast.TypedExpression{Expr: fd.Body, Type: returnT},
	}, nil
}

// checkValueDecl checks a top-level `val`/`var` declaration, declaring
// the binding in the global scope so later items can reference it.
func (ck *Checker) checkValueDecl(v *ast.VarDecl, env *tenv.Environment) (*typedast.TypedValueDecl, *diagnostic.Diagnostic) {
	diags := diagnostic.NewCollector()
	coll := infer.New(env, diags)

	var declared types.Type
	if v.Type != nil {
		resolved, diag := infer.ResolveTypeExpr(v.Type, env, nil)
		if diag != nil {
			diags.Report(diag)
		} else {
			declared = resolved
		}
	}

	var valueT types.Type
	var cs *types.ConstraintSet
	if declared != nil {
		valueT = declared
		cs = ck.checkBody(coll, v.Value, declared)
	} else {
		valueT, cs = coll.Synthesize(v.Value)
	}

	sigma, err := unify.Solve(cs)
	if err != nil {
		diags.Report(unifyFailureDiag(err))
		return nil, diags.Finish()
	}
	finalT := sigma.Apply(valueT)

	if decErr := env.DeclareVariable(v.Name, finalT, v.Mutable); decErr != nil {
		diags.Report(diagnostic.NewDuplicateDefinition("variable", v.Name, locOf(v)))
	}

	if diags.HasErrors() {
		return nil, diags.Finish()
	}
	return &typedast.TypedValueDecl{
		Decl:  v,
		Type:  finalT,
		Value: &typedast.TypedExpression{Expr: v.Value, Type: finalT},
	}, nil
}

// checkTopLevelExpr checks a bare top-level expression statement,
// evaluated for effect (e.g. `println("hi")`).
func (ck *Checker) checkTopLevelExpr(s *ast.ExprStmt, env *tenv.Environment) (*typedast.TypedExprItem, *diagnostic.Diagnostic) {
	diags := diagnostic.NewCollector()
	coll := infer.New(env, diags)

	t, cs := coll.Synthesize(s.Expr)
	sigma, err := unify.Solve(cs)
	if err != nil {
		diags.Report(unifyFailureDiag(err))
		return nil, diags.Finish()
	}
	finalT := sigma.Apply(t)

	if diags.HasErrors() {
		return nil, diags.Finish()
	}
	return &typedast.TypedExprItem{
		Stmt: s,
		Expr: &typedast.TypedExpression{Expr: s.Expr, Type: finalT},
	}, nil
}

// checkBody runs coll.Check, splitting between the two strategies: under
// ConstraintBased the whole expression's constraints are collected and
// returned for a single end-of-item solve; under Algorithmic, a top-level
// block's statements are each solved as soon as they are collected, and
// collection stops at the first statement whose own constraints fail.
// Every collected statement's constraints stay in the returned set, so
// the distinction is in when intermediate failures surface, not in the
// final result for programs the two strategies agree on.
func (ck *Checker) checkBody(coll *infer.Collector, body ast.Expr, expected types.Type) *types.ConstraintSet {
	if ck.Strategy != Algorithmic {
		return coll.Check(body, expected)
	}
	block, ok := body.(*ast.BlockExpression)
	if !ok {
		return coll.Check(body, expected)
	}
	cs := types.EmptyConstraintSet()
	for _, stmt := range block.Statements {
		stmtCS := coll.CheckStmt(stmt)
		cs = cs.Union(stmtCS)
		if _, err := unify.Solve(stmtCS); err != nil {
			return cs
		}
	}
	if block.Final == nil {
		return cs.Add(types.Equality(types.TUnit, expected, types.SourceLoc{}))
	}
	return cs.Union(coll.Check(block.Final, expected))
}
