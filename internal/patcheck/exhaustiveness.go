package patcheck

import (
	"github.com/taylorlang/semantic/internal/ast"
	"github.com/taylorlang/semantic/internal/tenv"
	"github.com/taylorlang/semantic/internal/types"
)

// CheckExhaustiveness reports the union variant names not covered by any
// non-guarded case's top-level pattern, given the scrutinee type t. An
// empty, non-nil slice should never be returned — callers treat nil as
// "exhaustive".
func CheckExhaustiveness(cases []*ast.Case, t types.Type, env *tenv.Environment) []string {
	for _, c := range cases {
		if isCatchAll(c.Pattern) && c.Guard == nil {
			return nil
		}
	}

	union, ok := t.(*types.Union)
	if !ok {
		// Non-union scrutinees (Boolean, numeric literals, etc.) are
		// exhaustive only via a catch-all, already handled above: with no
		// catch-all among the cases, a finite set of literal patterns can
		// never be proven to cover every value of the scrutinee type, so
		// this is non-exhaustive.
		return []string{"_"}
	}
	def, found := env.LookupType(union.Name)
	if !found {
		return nil
	}

	covered := map[string]bool{}
	for _, c := range cases {
		if c.Guard != nil {
			continue // guarded cases never contribute coverage
		}
		if ctor, ok := c.Pattern.(*ast.ConstructorPattern); ok {
			covered[ctor.Name] = true
		}
	}

	var missing []string
	for _, v := range def.Variants {
		if !covered[v.Name] {
			missing = append(missing, v.Name)
		}
	}
	return missing
}

// isCatchAll reports whether p matches unconditionally regardless of
// scrutinee shape: a bare wildcard or identifier pattern.
func isCatchAll(p ast.Pattern) bool {
	switch p.(type) {
	case *ast.WildcardPattern, *ast.IdentifierPattern:
		return true
	default:
		return false
	}
}
