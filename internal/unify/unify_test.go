package unify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taylorlang/semantic/internal/types"
)

func TestUnifyIdenticalTypesReturnsEmptySubstitution(t *testing.T) {
	sub, err := Unify(types.TInt, types.TInt)
	assert.NoError(t, err)
	assert.True(t, sub.IsEmpty())
}

func TestUnifyVariableBindsToConcreteType(t *testing.T) {
	v := types.NewTypeVar()
	sub, err := Unify(v, types.TInt)
	assert.NoError(t, err)
	assert.True(t, sub.Apply(v).Equals(types.TInt))
}

func TestUnifySoundness(t *testing.T) {
	a := &types.Tuple{Elements: []types.Type{types.NewTypeVar(), types.TString}}
	v := types.NewTypeVar()
	b := &types.Tuple{Elements: []types.Type{types.TInt, v}}

	sub, err := Unify(a, b)
	assert.NoError(t, err)
	assert.True(t, sub.Apply(a).Equals(sub.Apply(b)))
}

func TestUnifyOccursCheckFails(t *testing.T) {
	v := types.NewTypeVar()
	containing := &types.Tuple{Elements: []types.Type{v, types.TInt}}
	_, err := Unify(v, containing)
	assert.Error(t, err)
	var f *Failure
	assert.ErrorAs(t, err, &f)
	assert.Equal(t, InfiniteType, f.Kind)
}

func TestUnifyNumericWideningSucceeds(t *testing.T) {
	sub, err := Unify(types.TInt, types.TDouble)
	assert.NoError(t, err)
	assert.True(t, sub.IsEmpty())
}

func TestUnifyIncompatiblePrimitivesFails(t *testing.T) {
	_, err := Unify(types.TInt, types.TString)
	assert.Error(t, err)
	var f *Failure
	assert.ErrorAs(t, err, &f)
	assert.Equal(t, TypeMismatch, f.Kind)
}

func TestUnifyArityMismatchOnTuple(t *testing.T) {
	a := &types.Tuple{Elements: []types.Type{types.TInt}}
	b := &types.Tuple{Elements: []types.Type{types.TInt, types.TString}}
	_, err := Unify(a, b)
	assert.Error(t, err)
	var f *Failure
	assert.ErrorAs(t, err, &f)
	assert.Equal(t, ArityMismatch, f.Kind)
}

func TestUnifyNullableAbsorbsNonNullable(t *testing.T) {
	v := types.NewTypeVar()
	nullable := &types.Nullable{Base: v}
	sub, err := Unify(nullable, types.TInt)
	assert.NoError(t, err)
	assert.True(t, sub.Apply(v).Equals(types.TInt))
}

func TestUnifyNullableAbsorbsNonPrimitiveShapes(t *testing.T) {
	option := &types.Union{Name: "Option", TypeArgs: []types.Type{types.TInt}}
	nullableOption := &types.Nullable{Base: option}
	sub, err := Unify(option, nullableOption)
	assert.NoError(t, err)
	assert.True(t, sub.Apply(option).Equals(option))

	tup := &types.Tuple{Elements: []types.Type{types.TInt, types.TInt}}
	nullableTup := &types.Nullable{Base: tup}
	_, err = Unify(tup, nullableTup)
	assert.NoError(t, err)

	fn := &types.Function{Params: []types.Type{types.TInt}, Return: types.TInt}
	nullableFn := &types.Nullable{Base: fn}
	_, err = Unify(fn, nullableFn)
	assert.NoError(t, err)

	generic := &types.Generic{Name: "Box", Args: []types.Type{types.TInt}}
	nullableGeneric := &types.Nullable{Base: generic}
	_, err = Unify(generic, nullableGeneric)
	assert.NoError(t, err)
}

func TestUnifyRecursiveUnionNeverExpandsVariants(t *testing.T) {
	// List<Int> unifies with List<Int> purely by comparing name + args;
	// this must not attempt to expand Cons's own List<T> field (which
	// would otherwise loop forever / trip a bogus occurs check).
	listInt1 := &types.Union{Name: "List", TypeArgs: []types.Type{types.TInt}}
	listInt2 := &types.Union{Name: "List", TypeArgs: []types.Type{types.TInt}}
	sub, err := Unify(listInt1, listInt2)
	assert.NoError(t, err)
	assert.True(t, sub.IsEmpty())
}

func TestUnifyRecursiveUnionWithTypeVarArg(t *testing.T) {
	v := types.NewTypeVar()
	listVar := &types.Union{Name: "List", TypeArgs: []types.Type{v}}
	listInt := &types.Union{Name: "List", TypeArgs: []types.Type{types.TInt}}
	sub, err := Unify(listVar, listInt)
	assert.NoError(t, err)
	assert.True(t, sub.Apply(v).Equals(types.TInt))
}

func TestSolveConstraintSetSatisfiesEveryEquality(t *testing.T) {
	a := types.NewTypeVar()
	b := types.NewTypeVar()
	cs := types.NewConstraintSet(
		types.Equality(a, types.TInt, types.SourceLoc{}),
		types.Equality(b, a, types.SourceLoc{}),
	)
	sub, err := Solve(cs)
	assert.NoError(t, err)
	for _, c := range cs.Items() {
		assert.True(t, sub.Apply(c.Left).Equals(sub.Apply(c.Right)))
	}
}

func TestSolveInstanceConstraintInstantiatesFreshly(t *testing.T) {
	scheme := &types.TypeScheme{
		QuantifiedVars: []string{"a"},
		Body:           &types.Function{Params: []types.Type{&types.Named{Name: "a"}}, Return: &types.Named{Name: "a"}},
	}
	v := types.NewTypeVar()
	cs := types.NewConstraintSet(types.Instance(v, scheme, types.SourceLoc{}))
	sub, err := Solve(cs)
	assert.NoError(t, err)

	result := sub.Apply(v).(*types.Function)
	assert.True(t, result.Params[0].Equals(result.Return))
}

func TestSolveFunctionArityMismatch(t *testing.T) {
	a := &types.Function{Params: []types.Type{types.TInt}, Return: types.TInt}
	b := &types.Function{Params: []types.Type{types.TInt, types.TInt}, Return: types.TInt}
	_, err := Unify(a, b)
	assert.Error(t, err)
}

func TestSolveGenericNameMismatchFails(t *testing.T) {
	a := &types.Generic{Name: "Option", Args: []types.Type{types.TInt}}
	b := &types.Generic{Name: "List", Args: []types.Type{types.TInt}}
	_, err := Unify(a, b)
	assert.Error(t, err)
}
