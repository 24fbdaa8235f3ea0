// Package unify implements the unification engine: Robinson's algorithm
// over a FIFO worklist with occurs check, numeric widening, and
// union-by-name-and-args recursive-type handling.
package unify

import (
	"fmt"

	"github.com/taylorlang/semantic/internal/types"
)

// FailureKind tags why unification failed, at the granularity this layer
// cares about.
type FailureKind int

const (
	TypeMismatch FailureKind = iota
	ArityMismatch
	InfiniteType
)

// Failure describes a unification failure: kind, the two offending
// types, and the source location of the constraint first responsible.
type Failure struct {
	Kind FailureKind
	A, B types.Type
	Loc  types.SourceLoc
}

func (f *Failure) Error() string {
	switch f.Kind {
	case ArityMismatch:
		return fmt.Sprintf("arity mismatch between %s and %s at %s", f.A, f.B, f.Loc)
	case InfiniteType:
		return fmt.Sprintf("infinite type: %s occurs in %s at %s", f.A, f.B, f.Loc)
	default:
		return fmt.Sprintf("type mismatch: %s is not %s at %s", f.A, f.B, f.Loc)
	}
}

// Unify produces the most general unifier for t1 and t2, or a Failure.
func Unify(t1, t2 types.Type) (*types.Substitution, error) {
	return Solve(types.NewConstraintSet(types.Equality(t1, t2, types.SourceLoc{})))
}

// Solve solves an entire ConstraintSet via a worklist algorithm, returning
// the composed substitution or the first failure encountered (worklist
// order is FIFO, so failures refer to the first user-visible constraint).
func Solve(cs *types.ConstraintSet) (*types.Substitution, error) {
	worklist := cs.Items()
	sigma := types.EmptySubstitution()

	for len(worklist) > 0 {
		c := worklist[0]
		worklist = worklist[1:]

		switch c.Kind {
		case types.EqualityConstraint:
			left, right := sigma.Apply(c.Left), sigma.Apply(c.Right)
			extra, step, err := unifyStep(left, right, c.Loc)
			if err != nil {
				return nil, err
			}
			sigma = step.Compose(sigma)
			worklist = append(extra, worklist...)

		case types.SubtypeConstraint:
			left, right := sigma.Apply(c.Left), sigma.Apply(c.Right)
			extra, step, err := unifySubtypeStep(left, right, c.Loc)
			if err != nil {
				return nil, err
			}
			sigma = step.Compose(sigma)
			worklist = append(extra, worklist...)

		case types.InstanceConstraint:
			body := c.Scheme.Instantiate(types.NewTypeVar)
			worklist = append([]types.Constraint{types.Equality(c.Var, body, c.Loc)}, worklist...)
		}
	}
	return sigma, nil
}

// unifyStep handles one Equality constraint after substitution has been
// applied to both sides, returning any new constraints to push onto the
// worklist plus the substitution step this call contributes.
func unifyStep(a, b types.Type, loc types.SourceLoc) ([]types.Constraint, *types.Substitution, error) {
	if a.Equals(b) {
		return nil, types.EmptySubstitution(), nil
	}

	if av, ok := a.(*types.TypeVar); ok {
		return bindVar(av, b, loc)
	}
	if bv, ok := b.(*types.TypeVar); ok {
		return bindVar(bv, a, loc)
	}

	// Nullable absorption applies regardless of what concrete shape the
	// non-nullable side takes (Generic, Function, Tuple, Union, ...), so
	// it is handled once here before dispatching on a's type — not
	// per-case below, where only Nullable/Primitive/default used to
	// check for it.
	if _, aIsNullable := a.(*types.Nullable); !aIsNullable {
		if nb, ok := b.(*types.Nullable); ok {
			return []types.Constraint{types.Equality(a, nb.Base, loc)}, types.EmptySubstitution(), nil
		}
	}

	switch at := a.(type) {
	case *types.Generic:
		bt, ok := b.(*types.Generic)
		if !ok || at.Name != bt.Name {
			return nil, nil, &Failure{Kind: TypeMismatch, A: a, B: b, Loc: loc}
		}
		if len(at.Args) != len(bt.Args) {
			return nil, nil, &Failure{Kind: ArityMismatch, A: a, B: b, Loc: loc}
		}
		return pairwise(at.Args, bt.Args, loc), types.EmptySubstitution(), nil

	case *types.Function:
		bt, ok := b.(*types.Function)
		if !ok {
			return nil, nil, &Failure{Kind: TypeMismatch, A: a, B: b, Loc: loc}
		}
		if len(at.Params) != len(bt.Params) {
			return nil, nil, &Failure{Kind: ArityMismatch, A: a, B: b, Loc: loc}
		}
		cs := pairwise(at.Params, bt.Params, loc)
		cs = append(cs, types.Equality(at.Return, bt.Return, loc))
		return cs, types.EmptySubstitution(), nil

	case *types.Tuple:
		bt, ok := b.(*types.Tuple)
		if !ok {
			return nil, nil, &Failure{Kind: TypeMismatch, A: a, B: b, Loc: loc}
		}
		if len(at.Elements) != len(bt.Elements) {
			return nil, nil, &Failure{Kind: ArityMismatch, A: a, B: b, Loc: loc}
		}
		return pairwise(at.Elements, bt.Elements, loc), types.EmptySubstitution(), nil

	case *types.Nullable:
		if bt, ok := b.(*types.Nullable); ok {
			return []types.Constraint{types.Equality(at.Base, bt.Base, loc)}, types.EmptySubstitution(), nil
		}
		// Absorbing nullability: Nullable(b) ~ t where t is not nullable
		// unifies b with t directly.
		return []types.Constraint{types.Equality(at.Base, b, loc)}, types.EmptySubstitution(), nil

	case *types.Union:
		bt, ok := b.(*types.Union)
		if !ok || at.Name != bt.Name {
			return nil, nil, &Failure{Kind: TypeMismatch, A: a, B: b, Loc: loc}
		}
		if len(at.TypeArgs) != len(bt.TypeArgs) {
			return nil, nil, &Failure{Kind: ArityMismatch, A: a, B: b, Loc: loc}
		}
		// Never expand variant bodies here — only the type args. This is
		// what keeps a recursive union from tripping the occurs check on
		// itself.
		return pairwise(at.TypeArgs, bt.TypeArgs, loc), types.EmptySubstitution(), nil

	case *types.Primitive:
		// Two distinct numeric primitives unify successfully with no
		// substitution: both sides are already concrete, so there is
		// nothing to bind. The wider-of-the-two result is computed by
		// the caller (types.Wider), not recorded here.
		if _, ok := types.Wider(a, b); ok {
			return nil, types.EmptySubstitution(), nil
		}
		return nil, nil, &Failure{Kind: TypeMismatch, A: a, B: b, Loc: loc}

	default:
		return nil, nil, &Failure{Kind: TypeMismatch, A: a, B: b, Loc: loc}
	}
}

// unifySubtypeStep treats Subtype identically to Equality except that
// numeric widening is permitted only when a's rank <= b's rank.
func unifySubtypeStep(a, b types.Type, loc types.SourceLoc) ([]types.Constraint, *types.Substitution, error) {
	if types.IsNumeric(a) && types.IsNumeric(b) {
		ra, _ := types.NumericRank(a)
		rb, _ := types.NumericRank(b)
		if ra > rb {
			return nil, nil, &Failure{Kind: TypeMismatch, A: a, B: b, Loc: loc}
		}
		return nil, types.EmptySubstitution(), nil
	}
	return unifyStep(a, b, loc)
}

func pairwise(as, bs []types.Type, loc types.SourceLoc) []types.Constraint {
	cs := make([]types.Constraint, len(as))
	for i := range as {
		cs[i] = types.Equality(as[i], bs[i], loc)
	}
	return cs
}

// bindVar extends the substitution with v -> t, after the mandatory
// occurs check.
func bindVar(v *types.TypeVar, t types.Type, loc types.SourceLoc) ([]types.Constraint, *types.Substitution, error) {
	if tv, ok := t.(*types.TypeVar); ok && tv.ID == v.ID {
		return nil, types.EmptySubstitution(), nil
	}
	if types.FreeTypeVariables(t)[v.ID] {
		return nil, nil, &Failure{Kind: InfiniteType, A: v, B: t, Loc: loc}
	}
	return nil, types.SingleSubstitution(v, t), nil
}
