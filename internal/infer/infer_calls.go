package infer

import (
	"github.com/taylorlang/semantic/internal/ast"
	"github.com/taylorlang/semantic/internal/diagnostic"
	"github.com/taylorlang/semantic/internal/types"
)

// synthCall implements the function-call rule: look up the target's
// signature, instantiate its type parameters with fresh variables, emit
// a Subtype constraint per argument, return the instantiated return type.
func (c *Collector) synthCall(call *ast.FunctionCall) (types.Type, *types.ConstraintSet) {
	name, ok := call.Target.(*ast.Identifier)
	if !ok {
		// Calling a non-identifier expression (e.g. a lambda result):
		// synthesize its function type and apply structurally.
		return c.synthIndirectCall(call)
	}
	sig, found := c.Env.LookupFunction(name.Name)
	if !found {
		return c.synthIndirectCall(call)
	}
	if len(call.Args) != len(sig.ParamTypes) {
		c.Diags.Report(diagnostic.NewArityMismatch("function "+name.Name, len(sig.ParamTypes), len(call.Args), locOf(call)))
		return types.NewTypeVar(), types.EmptyConstraintSet()
	}

	sub := make(map[string]types.Type, len(sig.TypeParams))
	for _, p := range sig.TypeParams {
		sub[p] = types.NewTypeVar()
	}

	cs := types.EmptyConstraintSet()
	for i, arg := range call.Args {
		argT, argCS := c.Synthesize(arg)
		cs = cs.Union(argCS)
		paramT := sig.ParamTypes[i].Substitute(sub)
		cs = cs.Add(types.Subtype(argT, paramT, srcLoc(arg)))
	}
	return sig.ReturnType.Substitute(sub), cs
}

func (c *Collector) synthIndirectCall(call *ast.FunctionCall) (types.Type, *types.ConstraintSet) {
	targetT, cs := c.Synthesize(call.Target)
	argTypes := make([]types.Type, len(call.Args))
	for i, arg := range call.Args {
		at, acs := c.Synthesize(arg)
		argTypes[i] = at
		cs = cs.Union(acs)
	}
	ret := types.NewTypeVar()
	cs = cs.Add(types.Equality(targetT, &types.Function{Params: argTypes, Return: ret}, srcLoc(call)))
	return ret, cs
}

// synthConstructorCall implements the constructor-call rule.
func (c *Collector) synthConstructorCall(call *ast.ConstructorCall) (types.Type, *types.ConstraintSet) {
	def, variant, found := c.Env.LookupVariant(call.Name)
	if !found {
		c.Diags.Report(diagnostic.NewUnresolvedSymbol(call.Name, locOf(call)))
		return types.NewTypeVar(), types.EmptyConstraintSet()
	}
	if len(call.Args) != len(variant.FieldTypes) {
		c.Diags.Report(diagnostic.NewArityMismatch("constructor "+call.Name, len(variant.FieldTypes), len(call.Args), locOf(call)))
		return types.NewTypeVar(), types.EmptyConstraintSet()
	}

	sub := make(map[string]types.Type, len(def.TypeParams))
	typeArgs := make([]types.Type, len(def.TypeParams))
	for i, p := range def.TypeParams {
		fresh := types.NewTypeVar()
		sub[p] = fresh
		typeArgs[i] = fresh
	}

	cs := types.EmptyConstraintSet()
	for i, arg := range call.Args {
		argT, argCS := c.Synthesize(arg)
		cs = cs.Union(argCS)
		fieldT := variant.FieldTypes[i].Substitute(sub)
		cs = cs.Add(types.Subtype(argT, fieldT, srcLoc(arg)))
	}
	return &types.Union{Name: def.Name, TypeArgs: typeArgs}, cs
}

// synthLambda implements the lambda rule: fresh variables for each
// parameter, no generalization (let-polymorphism is restricted to
// declared functions).
func (c *Collector) synthLambda(l *ast.LambdaExpression) (types.Type, *types.ConstraintSet) {
	c.Env.PushScope()
	defer c.Env.PopScope()

	paramTypes := make([]types.Type, len(l.Params))
	cs := types.EmptyConstraintSet()
	for i, p := range l.Params {
		var pt types.Type = types.NewTypeVar()
		if p.Type != nil {
			resolved, diag := ResolveTypeExpr(p.Type, c.Env, nil)
			if diag != nil {
				c.Diags.Report(diag)
			} else {
				pt = resolved
			}
		}
		paramTypes[i] = pt
		if err := c.Env.DeclareVariable(p.Name, pt, false); err != nil {
			c.Diags.Report(diagnostic.NewDuplicateDefinition("parameter", p.Name, locOf(l)))
		}
	}
	bodyT, bodyCS := c.Synthesize(l.Body)
	cs = cs.Union(bodyCS)
	return &types.Function{Params: paramTypes, Return: bodyT}, cs
}

func (c *Collector) checkLambda(l *ast.LambdaExpression, expected types.Type) *types.ConstraintSet {
	fn, ok := expected.(*types.Function)
	if !ok || len(fn.Params) != len(l.Params) {
		actual, cs := c.synthLambda(l)
		return cs.Add(types.Equality(actual, expected, srcLoc(l)))
	}

	c.Env.PushScope()
	defer c.Env.PopScope()

	cs := types.EmptyConstraintSet()
	for i, p := range l.Params {
		pt := fn.Params[i]
		if p.Type != nil {
			resolved, diag := ResolveTypeExpr(p.Type, c.Env, nil)
			if diag == nil {
				cs = cs.Add(types.Equality(resolved, pt, locOfParam(p)))
			}
		}
		if err := c.Env.DeclareVariable(p.Name, pt, false); err != nil {
			c.Diags.Report(diagnostic.NewDuplicateDefinition("parameter", p.Name, locOf(l)))
		}
	}
	return cs.Union(c.Check(l.Body, fn.Return))
}

func locOfParam(p *ast.LambdaParam) types.SourceLoc {
	return types.SourceLoc{Line: p.Pos.Line, Column: p.Pos.Column, File: p.Pos.File, Valid: true}
}
