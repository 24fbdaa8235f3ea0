package infer

import (
	"github.com/taylorlang/semantic/internal/ast"
	"github.com/taylorlang/semantic/internal/diagnostic"
	"github.com/taylorlang/semantic/internal/patcheck"
	"github.com/taylorlang/semantic/internal/types"
)

// synthTry implements the try-expression rule: legal only inside a
// function whose declared return type is Result<T, E> with
// E :> Throwable. The body is constrained to Result(alpha, beta); alpha
// propagates as the try's result type; each catch pattern is checked
// against beta and its body must unify with alpha.
func (c *Collector) synthTry(t *ast.TryExpression) (types.Type, *types.ConstraintSet) {
	alpha, beta, ok := c.tryResultTypeArgs(t)
	if !ok {
		return types.NewTypeVar(), types.EmptyConstraintSet()
	}

	bodyT, cs := c.Synthesize(t.Body)
	cs = cs.Add(types.Equality(bodyT, types.NewResultType(alpha, beta), srcLoc(t.Body)))

	for _, catch := range t.Catches {
		cs = cs.Union(c.checkCatch(catch, beta, alpha))
	}
	return alpha, cs
}

func (c *Collector) checkTry(t *ast.TryExpression, expected types.Type) *types.ConstraintSet {
	alpha, beta, ok := c.tryResultTypeArgs(t)
	if !ok {
		return types.EmptyConstraintSet()
	}

	bodyT, cs := c.Synthesize(t.Body)
	cs = cs.Add(types.Equality(bodyT, types.NewResultType(alpha, beta), srcLoc(t.Body)))
	cs = cs.Add(types.Equality(alpha, expected, srcLoc(t)))

	for _, catch := range t.Catches {
		cs = cs.Union(c.checkCatch(catch, beta, expected))
	}
	return cs
}

// tryResultTypeArgs validates the enclosing-function precondition and
// returns (alpha, beta) from the declared Result<alpha, beta> return
// type, reporting a diagnostic and returning ok=false otherwise.
func (c *Collector) tryResultTypeArgs(t *ast.TryExpression) (types.Type, types.Type, bool) {
	enclosing, found := c.Env.EnclosingReturn()
	if !found {
		c.Diags.Report(diagnostic.NewInvalidOperation("try", stringStringer("outside any function"), locOf(t)))
		return nil, nil, false
	}
	result, ok := enclosing.(*types.Union)
	if !ok || result.Name != "Result" || len(result.TypeArgs) != 2 {
		c.Diags.Report(diagnostic.NewInvalidOperation("try", enclosing, locOf(t)))
		return nil, nil, false
	}
	alpha, beta := result.TypeArgs[0], result.TypeArgs[1]
	if !types.IsThrowableCompatible(beta) {
		c.Diags.Report(diagnostic.NewResultErrorTypeViolation(beta, locOf(t)))
	}
	return alpha, beta, true
}

func (c *Collector) checkCatch(catch *ast.CatchClause, errType, resultType types.Type) *types.ConstraintSet {
	c.Env.PushScope()
	defer c.Env.PopScope()

	cs := types.EmptyConstraintSet()
	info, diag := patcheck.Check(catch.Pattern, errType, c.Env)
	if diag != nil {
		c.Diags.Report(diag)
	} else {
		for name, bindT := range info.Bindings {
			if err := c.Env.DeclareVariable(name, bindT, false); err != nil {
				c.Diags.Report(diagnostic.NewDuplicateDefinition("pattern binding", name, locOf(catch.Pattern)))
			}
		}
	}
	return cs.Union(c.Check(catch.Body, resultType))
}
