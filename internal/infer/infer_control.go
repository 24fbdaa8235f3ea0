package infer

import (
	"github.com/taylorlang/semantic/internal/ast"
	"github.com/taylorlang/semantic/internal/diagnostic"
	"github.com/taylorlang/semantic/internal/patcheck"
	"github.com/taylorlang/semantic/internal/types"
)

func (c *Collector) synthIf(i *ast.IfExpression) (types.Type, *types.ConstraintSet) {
	condT, cs := c.Synthesize(i.Cond)
	cs = cs.Add(types.Equality(condT, types.TBoolean, srcLoc(i.Cond)))

	thenT, thenCS := c.Synthesize(i.Then)
	cs = cs.Union(thenCS)

	if i.Else == nil {
		return &types.Nullable{Base: thenT}, cs
	}
	elseT, elseCS := c.Synthesize(i.Else)
	cs = cs.Union(elseCS)
	cs = cs.Add(types.Equality(thenT, elseT, srcLoc(i)))
	return thenT, cs
}

func (c *Collector) checkIf(i *ast.IfExpression, expected types.Type) *types.ConstraintSet {
	condT, cs := c.Synthesize(i.Cond)
	cs = cs.Add(types.Equality(condT, types.TBoolean, srcLoc(i.Cond)))
	cs = cs.Union(c.Check(i.Then, expected))
	if i.Else != nil {
		cs = cs.Union(c.Check(i.Else, expected))
	}
	return cs
}

func (c *Collector) synthBlock(b *ast.BlockExpression) (types.Type, *types.ConstraintSet) {
	c.Env.PushScope()
	defer c.Env.PopScope()

	cs := types.EmptyConstraintSet()
	for _, s := range b.Statements {
		cs = cs.Union(c.CheckStmt(s))
	}
	if b.Final == nil {
		return types.TUnit, cs
	}
	finalT, finalCS := c.Synthesize(b.Final)
	return finalT, cs.Union(finalCS)
}

func (c *Collector) checkBlock(b *ast.BlockExpression, expected types.Type) *types.ConstraintSet {
	c.Env.PushScope()
	defer c.Env.PopScope()

	cs := types.EmptyConstraintSet()
	for _, s := range b.Statements {
		cs = cs.Union(c.CheckStmt(s))
	}
	if b.Final == nil {
		return cs.Add(types.Equality(types.TUnit, expected, srcLoc(b)))
	}
	return cs.Union(c.Check(b.Final, expected))
}

// synthMatch implements the match rule, delegating per-case pattern work
// to the pattern checker.
func (c *Collector) synthMatch(m *ast.MatchExpression) (types.Type, *types.ConstraintSet) {
	scrutT, cs := c.Synthesize(m.Scrutinee)

	if missing := patcheck.CheckExhaustiveness(m.Cases, scrutT, c.Env); len(missing) > 0 {
		c.Diags.Report(diagnostic.NewNonExhaustiveMatch(missing, locOf(m)))
	}

	var resultT types.Type
	for idx, arm := range m.Cases {
		armT, armCS := c.checkCase(arm, scrutT)
		cs = cs.Union(armCS)
		if idx == 0 {
			resultT = armT
		} else {
			cs = cs.Add(types.Equality(resultT, armT, srcLoc(arm.Body)))
		}
	}
	if resultT == nil {
		resultT = types.NewTypeVar()
	}
	return resultT, cs
}

func (c *Collector) checkMatch(m *ast.MatchExpression, expected types.Type) *types.ConstraintSet {
	scrutT, cs := c.Synthesize(m.Scrutinee)
	if missing := patcheck.CheckExhaustiveness(m.Cases, scrutT, c.Env); len(missing) > 0 {
		c.Diags.Report(diagnostic.NewNonExhaustiveMatch(missing, locOf(m)))
	}
	for _, arm := range m.Cases {
		cs = cs.Union(c.checkCaseAgainst(arm, scrutT, expected))
	}
	return cs
}

// checkCase types one match arm in synthesis mode, returning its body
// type and the constraints (pattern bindings + guard + body).
func (c *Collector) checkCase(arm *ast.Case, scrutT types.Type) (types.Type, *types.ConstraintSet) {
	c.Env.PushScope()
	defer c.Env.PopScope()

	cs := types.EmptyConstraintSet()
	info, diag := patcheck.Check(arm.Pattern, scrutT, c.Env)
	if diag != nil {
		c.Diags.Report(diag)
	} else {
		for name, t := range info.Bindings {
			if err := c.Env.DeclareVariable(name, t, false); err != nil {
				c.Diags.Report(diagnostic.NewDuplicateDefinition("pattern binding", name, locOf(arm.Pattern)))
			}
		}
	}
	if arm.Guard != nil {
		cs = cs.Union(c.Check(arm.Guard, types.TBoolean))
	}
	bodyT, bodyCS := c.Synthesize(arm.Body)
	return bodyT, cs.Union(bodyCS)
}

func (c *Collector) checkCaseAgainst(arm *ast.Case, scrutT, expected types.Type) *types.ConstraintSet {
	c.Env.PushScope()
	defer c.Env.PopScope()

	cs := types.EmptyConstraintSet()
	info, diag := patcheck.Check(arm.Pattern, scrutT, c.Env)
	if diag != nil {
		c.Diags.Report(diag)
	} else {
		for name, t := range info.Bindings {
			if err := c.Env.DeclareVariable(name, t, false); err != nil {
				c.Diags.Report(diagnostic.NewDuplicateDefinition("pattern binding", name, locOf(arm.Pattern)))
			}
		}
	}
	if arm.Guard != nil {
		cs = cs.Union(c.Check(arm.Guard, types.TBoolean))
	}
	return cs.Union(c.Check(arm.Body, expected))
}
