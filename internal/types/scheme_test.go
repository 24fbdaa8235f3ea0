package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonomorphicInstantiateIsIdentity(t *testing.T) {
	scheme := Monomorphic(TInt)
	got := scheme.Instantiate(NewTypeVar)
	assert.True(t, got.Equals(TInt))
}

func TestInstantiateFreshensQuantifiedVars(t *testing.T) {
	scheme := &TypeScheme{
		QuantifiedVars: []string{"a"},
		Body:           &Function{Params: []Type{&Named{Name: "a"}}, Return: &Named{Name: "a"}},
	}
	first := scheme.Instantiate(NewTypeVar)
	second := scheme.Instantiate(NewTypeVar)

	assert.False(t, first.Equals(second), "two instantiations must mint distinct fresh vars")

	fn := first.(*Function)
	assert.True(t, fn.Params[0].Equals(fn.Return), "both occurrences of 'a' instantiate to the same fresh var")
}

func TestGeneralizeQuantifiesOnlyNonEnvFreeVars(t *testing.T) {
	inEnv := NewTypeVar()
	local := NewTypeVar()
	t1 := &Function{Params: []Type{inEnv}, Return: local}

	scheme := Generalize(t1, map[string]bool{inEnv.ID: true})
	assert.Equal(t, []string{local.ID}, scheme.QuantifiedVars)
}
