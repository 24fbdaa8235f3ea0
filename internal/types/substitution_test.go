package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstitutionApplyReplacesTypeVar(t *testing.T) {
	v := NewTypeVar()
	sub := SingleSubstitution(v, TInt)
	assert.True(t, sub.Apply(v).Equals(TInt))
}

func TestSubstitutionApplyLeavesUnboundVarsAlone(t *testing.T) {
	v := NewTypeVar()
	other := NewTypeVar()
	sub := SingleSubstitution(v, TInt)
	assert.True(t, sub.Apply(other).Equals(other))
}

func TestSubstitutionIdentityLaws(t *testing.T) {
	v := NewTypeVar()
	s := SingleSubstitution(v, TInt)
	empty := EmptySubstitution()

	left := empty.Compose(s)
	right := s.Compose(empty)

	probe := &Tuple{Elements: []Type{v, TString}}
	assert.True(t, left.Apply(probe).Equals(s.Apply(probe)))
	assert.True(t, right.Apply(probe).Equals(s.Apply(probe)))
}

func TestSubstitutionComposeMatchesSequentialApplication(t *testing.T) {
	a := NewTypeVar()
	b := NewTypeVar()
	s1 := SingleSubstitution(a, b)
	s2 := SingleSubstitution(b, TInt)

	composed := s1.Compose(s2)
	direct := s1.Apply(s2.Apply(a))
	assert.True(t, composed.Apply(a).Equals(direct))
}

func TestSubstitutionComposeAssociative(t *testing.T) {
	a := NewTypeVar()
	b := NewTypeVar()
	c := NewTypeVar()
	s1 := SingleSubstitution(a, b)
	s2 := SingleSubstitution(b, c)
	s3 := SingleSubstitution(c, TInt)

	left := s1.Compose(s2).Compose(s3)
	right := s1.Compose(s2.Compose(s3))

	assert.True(t, left.Apply(a).Equals(right.Apply(a)))
}

func TestSubstitutionIdempotentAfterCompose(t *testing.T) {
	a := NewTypeVar()
	b := NewTypeVar()
	s1 := SingleSubstitution(a, b)
	s2 := SingleSubstitution(b, TInt)
	// The later binding goes on the left, as Solve composes each new step
	// onto the accumulated substitution.
	composed := s2.Compose(s1)

	once := composed.Apply(a)
	twice := composed.Apply(once)
	assert.True(t, once.Equals(twice))
}

func TestSubstitutionRemoveAndRestrict(t *testing.T) {
	a := NewTypeVar()
	b := NewTypeVar()
	sub := SingleSubstitution(a, TInt).Extend(b, TString)

	removed := sub.Remove(a.ID)
	_, ok := removed.Lookup(a.ID)
	assert.False(t, ok)
	_, ok = removed.Lookup(b.ID)
	assert.True(t, ok)

	restricted := sub.Restrict(map[string]bool{a.ID: true})
	_, ok = restricted.Lookup(a.ID)
	assert.True(t, ok)
	_, ok = restricted.Lookup(b.ID)
	assert.False(t, ok)
}

func TestSubstitutionApplyToSchemeSkipsQuantifiedVars(t *testing.T) {
	bound := NewTypeVar()
	free := NewTypeVar()
	scheme := &TypeScheme{
		QuantifiedVars: []string{bound.ID},
		Body:           &Function{Params: []Type{bound}, Return: free},
	}
	sub := SingleSubstitution(bound, TInt).Extend(free, TString)
	applied := sub.ApplyToScheme(scheme)

	fn := applied.Body.(*Function)
	assert.True(t, fn.Params[0].Equals(bound)) // still the bound var, untouched
	assert.True(t, fn.Return.Equals(TString))
}
