package infer

import (
	"github.com/taylorlang/semantic/internal/ast"
	"github.com/taylorlang/semantic/internal/types"
)

func (c *Collector) synthLiteral(lit *ast.Literal) (types.Type, *types.ConstraintSet) {
	switch lit.Kind {
	case ast.IntLit:
		return types.TInt, types.EmptyConstraintSet()
	case ast.FloatLit:
		return types.TDouble, types.EmptyConstraintSet()
	case ast.StringLit:
		return types.TString, types.EmptyConstraintSet()
	case ast.BoolLit:
		return types.TBoolean, types.EmptyConstraintSet()
	case ast.NullLit:
		return &types.Nullable{Base: types.NewTypeVar()}, types.EmptyConstraintSet()
	default:
		return types.NewTypeVar(), types.EmptyConstraintSet()
	}
}

func (c *Collector) checkLiteral(lit *ast.Literal, expected types.Type) *types.ConstraintSet {
	if lit.Kind == ast.IntLit && types.IsNumeric(expected) {
		// Checking mode constrains an integer literal to the expected
		// numeric type directly rather than defaulting to Int.
		return types.EmptyConstraintSet()
	}
	actual, cs := c.synthLiteral(lit)
	return cs.Add(types.Equality(actual, expected, srcLoc(lit)))
}

func (c *Collector) synthTupleLit(t *ast.TupleLit) (types.Type, *types.ConstraintSet) {
	elemTypes := make([]types.Type, len(t.Elements))
	cs := types.EmptyConstraintSet()
	for i, e := range t.Elements {
		et, ecs := c.Synthesize(e)
		elemTypes[i] = et
		cs = cs.Union(ecs)
	}
	return &types.Tuple{Elements: elemTypes}, cs
}
