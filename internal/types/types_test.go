package types

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestPrimitiveEquality(t *testing.T) {
	assert.True(t, TInt.Equals(&Primitive{Name: "Int"}))
	assert.False(t, TInt.Equals(TLong))
	assert.False(t, TInt.Equals(&Named{Name: "Int"}))
}

func TestGenericEquality(t *testing.T) {
	a := &Generic{Name: "Option", Args: []Type{TInt}}
	b := &Generic{Name: "Option", Args: []Type{TInt}}
	c := &Generic{Name: "Option", Args: []Type{TString}}
	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestUnionEqualityComparesArgsNotVariants(t *testing.T) {
	// A Union is compared only by name + type args, never by expanding
	// variants (this is what keeps recursive unions from looping).
	list1 := &Union{Name: "List", TypeArgs: []Type{TInt}}
	list2 := &Union{Name: "List", TypeArgs: []Type{TInt}}
	listStr := &Union{Name: "List", TypeArgs: []Type{TString}}
	assert.True(t, list1.Equals(list2))
	assert.False(t, list1.Equals(listStr))
}

func TestNullableSubstitute(t *testing.T) {
	v := NewTypeVar()
	n := &Nullable{Base: v}
	sub := map[string]Type{v.ID: TString}
	got := n.Substitute(sub)
	want := &Nullable{Base: TString}
	assert.True(t, got.Equals(want))
}

func TestFunctionSubstituteRecursesParamsAndReturn(t *testing.T) {
	a := NewTypeVar()
	b := NewTypeVar()
	fn := &Function{Params: []Type{a}, Return: b}
	sub := map[string]Type{a.ID: TInt, b.ID: TBoolean}
	got := fn.Substitute(sub)
	want := &Function{Params: []Type{TInt}, Return: TBoolean}
	assert.True(t, got.Equals(want))
}

func TestFreeTypeVariables(t *testing.T) {
	ResetTypeVarCounterForTesting()
	a := NewTypeVar()
	b := NewTypeVar()
	ft := &Function{
		Params: []Type{a, &Tuple{Elements: []Type{b, TInt}}},
		Return: &Nullable{Base: a},
	}
	free := FreeTypeVariableList(ft)
	assert.Equal(t, []string{"t1", "t2"}, free)
}

func TestFreeTypeVariablesIgnoreNamed(t *testing.T) {
	n := &Named{Name: "t1"}
	free := FreeTypeVariables(n)
	assert.Empty(t, free)
}

func TestNewTypeVarMonotoneAndUnique(t *testing.T) {
	ResetTypeVarCounterForTesting()
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		v := NewTypeVar()
		assert.False(t, seen[v.ID], "TypeVar id reused: %s", v.ID)
		seen[v.ID] = true
	}
}

func TestNumericWideningLattice(t *testing.T) {
	wider, ok := Wider(TInt, TDouble)
	assert.True(t, ok)
	assert.True(t, wider.Equals(TDouble))

	wider, ok = Wider(TLong, TShort)
	assert.True(t, ok)
	assert.True(t, wider.Equals(TLong))

	_, ok = Wider(TInt, TString)
	assert.False(t, ok)
}

// TestCompositeTypeStringRendering golden-checks the rendered form of a
// deeply nested composite type, using a structural diff rather than a
// plain string == so a failing comparison points at the exact nested
// position that drifted.
func TestCompositeTypeStringRendering(t *testing.T) {
	ft := &Function{
		Params: []Type{
			&Generic{Name: "Option", Args: []Type{TInt}},
			&Tuple{Elements: []Type{TString, &Nullable{Base: TBoolean}}},
		},
		Return: &Union{Name: "Result", TypeArgs: []Type{TInt, TString}},
	}

	want := "(Option<Int>, (String, Boolean?)) -> Result<Int, String>"
	if diff := cmp.Diff(want, ft.String()); diff != "" {
		t.Errorf("composite type rendering mismatch (-want +got):\n%s", diff)
	}
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, IsNumeric(TByte))
	assert.True(t, IsNumeric(TDouble))
	assert.False(t, IsNumeric(TString))
	assert.False(t, IsNumeric(TBoolean))
}

func TestNewResultType(t *testing.T) {
	r := NewResultType(TInt, Throwable)
	assert.Equal(t, "Result<Int, Throwable>", r.String())
}
