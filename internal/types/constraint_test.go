package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstraintSetUnionPreservesOrder(t *testing.T) {
	c1 := Equality(TInt, TInt, SourceLoc{})
	c2 := Equality(TString, TString, SourceLoc{})
	c3 := Equality(TBoolean, TBoolean, SourceLoc{})

	a := NewConstraintSet(c1)
	b := NewConstraintSet(c2, c3)
	union := a.Union(b)

	items := union.Items()
	assert.Len(t, items, 3)
	assert.Equal(t, EqualityConstraint, items[0].Kind)
	assert.True(t, items[0].Left.Equals(TInt))
	assert.True(t, items[1].Left.Equals(TString))
	assert.True(t, items[2].Left.Equals(TBoolean))
}

func TestConstraintSetIsImmutable(t *testing.T) {
	original := NewConstraintSet(Equality(TInt, TInt, SourceLoc{}))
	extended := original.Add(Equality(TString, TString, SourceLoc{}))

	assert.Equal(t, 1, original.Len())
	assert.Equal(t, 2, extended.Len())
}

func TestConstraintSetFilterAndPartition(t *testing.T) {
	cs := NewConstraintSet(
		Equality(TInt, TInt, SourceLoc{}),
		Subtype(TInt, TDouble, SourceLoc{}),
		Instance(NewTypeVar(), Monomorphic(TInt), SourceLoc{}),
	)

	equalities := cs.Filter(func(c Constraint) bool { return c.Kind == EqualityConstraint })
	assert.Equal(t, 1, equalities.Len())

	yes, no := cs.Partition(func(c Constraint) bool { return c.Kind == InstanceConstraint })
	assert.Equal(t, 1, yes.Len())
	assert.Equal(t, 2, no.Len())
}

func TestInstanceConstraintCarriesSchemeAndVar(t *testing.T) {
	v := NewTypeVar()
	scheme := &TypeScheme{QuantifiedVars: []string{"a"}, Body: &Named{Name: "a"}}
	c := Instance(v, scheme, SourceLoc{Line: 3, Column: 1, Valid: true})

	assert.Equal(t, InstanceConstraint, c.Kind)
	assert.Equal(t, v, c.Var)
	assert.Equal(t, scheme, c.Scheme)
	assert.Equal(t, "3:1", c.Loc.String())
}
