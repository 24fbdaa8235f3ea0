// Package patcheck implements the pattern checker: checking a pattern
// against a scrutinee type, computing the bindings it introduces, and
// deciding match exhaustiveness over algebraic data types.
package patcheck

import (
	"fmt"

	"github.com/taylorlang/semantic/internal/ast"
	"github.com/taylorlang/semantic/internal/diagnostic"
	"github.com/taylorlang/semantic/internal/tenv"
	"github.com/taylorlang/semantic/internal/types"
)

// PatternInfo is the result of successfully checking a pattern: the
// bindings it introduces and the variant names it covers (a constructor
// pattern records its own name, a literal pattern its literal value;
// wildcard, identifier, tuple and list patterns leave it empty).
type PatternInfo struct {
	Bindings        map[string]types.Type
	CoveredVariants map[string]bool
	// Irrefutable is true for Wildcard/Identifier patterns, which cover
	// everything regardless of the scrutinee's shape.
	Irrefutable bool
}

func newInfo() *PatternInfo {
	return &PatternInfo{Bindings: map[string]types.Type{}, CoveredVariants: map[string]bool{}}
}

func locOf(p ast.Pattern) *diagnostic.Location {
	pos := p.Position()
	return &diagnostic.Location{Line: pos.Line, Column: pos.Column, File: pos.File, Valid: true}
}

// Check recursively checks pattern against scrutinee type t, dispatching
// on the pattern's concrete kind.
func Check(pattern ast.Pattern, t types.Type, env *tenv.Environment) (*PatternInfo, *diagnostic.Diagnostic) {
	switch p := pattern.(type) {
	case *ast.WildcardPattern:
		info := newInfo()
		info.Irrefutable = true
		return info, nil

	case *ast.IdentifierPattern:
		info := newInfo()
		info.Irrefutable = true
		info.Bindings[p.Name] = t
		return info, nil

	case *ast.LiteralPattern:
		litType := literalPatternType(p)
		if !litType.Equals(t) && !isNullableOf(t, litType) {
			return nil, diagnostic.NewTypeMismatch(t, litType, locOf(p))
		}
		info := newInfo()
		info.CoveredVariants[fmt.Sprintf("%v", p.Value)] = true
		return info, nil

	case *ast.ConstructorPattern:
		return checkConstructor(p, t, env)

	case *ast.TuplePattern:
		return checkTuple(p, t, env)

	case *ast.ListPattern:
		return checkList(p, t, env)

	default:
		return nil, diagnostic.NewInvalidOperation("pattern", typeStringer{"unknown pattern"}, locOf(pattern))
	}
}

type typeStringer struct{ s string }

func (t typeStringer) String() string { return t.s }

func literalPatternType(p *ast.LiteralPattern) types.Type {
	switch p.Kind {
	case ast.IntLit:
		return types.TInt
	case ast.FloatLit:
		return types.TDouble
	case ast.StringLit:
		return types.TString
	case ast.BoolLit:
		return types.TBoolean
	default:
		return &types.Nullable{Base: types.NewTypeVar()}
	}
}

func isNullableOf(t, base types.Type) bool {
	n, ok := t.(*types.Nullable)
	return ok && n.Base.Equals(base)
}

func checkConstructor(p *ast.ConstructorPattern, t types.Type, env *tenv.Environment) (*PatternInfo, *diagnostic.Diagnostic) {
	union, ok := t.(*types.Union)
	if !ok {
		return nil, diagnostic.NewTypeMismatch(t, typeStringer{fmt.Sprintf("Union(%s, ...)", p.Name)}, locOf(p))
	}
	def, variant, found := env.LookupVariant(p.Name)
	if !found || def.Name != union.Name {
		return nil, diagnostic.NewUnresolvedSymbol(p.Name, locOf(p))
	}
	if len(p.Args) != len(variant.FieldTypes) {
		return nil, diagnostic.NewArityMismatch("constructor "+p.Name, len(variant.FieldTypes), len(p.Args), locOf(p))
	}

	sub := make(map[string]types.Type, len(def.TypeParams))
	for i, name := range def.TypeParams {
		if i < len(union.TypeArgs) {
			sub[name] = union.TypeArgs[i]
		}
	}

	info := newInfo()
	info.CoveredVariants[p.Name] = true
	for i, subPattern := range p.Args {
		fieldType := variant.FieldTypes[i].Substitute(sub)
		subInfo, diag := Check(subPattern, fieldType, env)
		if diag != nil {
			return nil, diag
		}
		if mergeErr := mergeBindings(info, subInfo); mergeErr != nil {
			return nil, mergeErr
		}
	}
	return info, nil
}

func checkTuple(p *ast.TuplePattern, t types.Type, env *tenv.Environment) (*PatternInfo, *diagnostic.Diagnostic) {
	tup, ok := t.(*types.Tuple)
	if !ok {
		return nil, diagnostic.NewTypeMismatch(t, typeStringer{"Tuple"}, locOf(p))
	}
	if len(p.Elements) != len(tup.Elements) {
		return nil, diagnostic.NewArityMismatch("tuple pattern", len(tup.Elements), len(p.Elements), locOf(p))
	}
	info := newInfo()
	for i, elemPattern := range p.Elements {
		subInfo, diag := Check(elemPattern, tup.Elements[i], env)
		if diag != nil {
			return nil, diag
		}
		if mergeErr := mergeBindings(info, subInfo); mergeErr != nil {
			return nil, mergeErr
		}
	}
	return info, nil
}

func checkList(p *ast.ListPattern, t types.Type, env *tenv.Environment) (*PatternInfo, *diagnostic.Diagnostic) {
	g, ok := t.(*types.Generic)
	if !ok || g.Name != "List" || len(g.Args) != 1 {
		return nil, diagnostic.NewTypeMismatch(t, typeStringer{"List<T>"}, locOf(p))
	}
	elemT := g.Args[0]
	info := newInfo()
	for _, elemPattern := range p.Elements {
		subInfo, diag := Check(elemPattern, elemT, env)
		if diag != nil {
			return nil, diag
		}
		if mergeErr := mergeBindings(info, subInfo); mergeErr != nil {
			return nil, mergeErr
		}
	}
	if p.HasRest && p.Rest != "" {
		info.Bindings[p.Rest] = types.ListOf(elemT)
	}
	return info, nil
}

func mergeBindings(into, from *PatternInfo) *diagnostic.Diagnostic {
	for name, t := range from.Bindings {
		if _, exists := into.Bindings[name]; exists {
			return diagnostic.NewDuplicateDefinition("pattern binding", name, nil)
		}
		into.Bindings[name] = t
	}
	return nil
}
