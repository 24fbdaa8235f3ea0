package infer

import (
	"github.com/taylorlang/semantic/internal/ast"
	"github.com/taylorlang/semantic/internal/diagnostic"
	"github.com/taylorlang/semantic/internal/suggest"
	"github.com/taylorlang/semantic/internal/types"
)

// synthIdentifier implements the identifier rule: monomorphic bindings
// return directly with no constraints; polymorphic schemes emit
// an Instance constraint against a fresh variable; unbound identifiers
// fabricate a fresh variable so downstream checking can continue (the
// diagnostic is already recorded here, once).
func (c *Collector) synthIdentifier(id *ast.Identifier) (types.Type, *types.ConstraintSet) {
	res := c.Env.Lookup(id.Name)
	if !res.Found {
		near, confidence := suggest.Nearest(id.Name, c.Env.VisibleNames())
		c.Diags.Report(diagnostic.NewUnresolvedSymbolWithSuggestion(id.Name, near, confidence, locOf(id)))
		return types.NewTypeVar(), types.EmptyConstraintSet()
	}
	if res.Binding != nil {
		return res.Binding.Type, types.EmptyConstraintSet()
	}
	fresh := types.NewTypeVar()
	cs := types.NewConstraintSet(types.Instance(fresh, res.Scheme, srcLoc(id)))
	return fresh, cs
}
