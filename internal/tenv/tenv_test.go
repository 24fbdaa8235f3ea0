package tenv

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taylorlang/semantic/internal/types"
)

func TestBuiltinsArePopulated(t *testing.T) {
	env := New()

	res := env.Lookup("println")
	assert.True(t, res.Found)
	assert.True(t, res.Binding.Type.Equals(&types.Function{
		Params: []types.Type{types.TString},
		Return: types.TUnit,
	}))

	_, ok := env.LookupType("Result")
	assert.True(t, ok)

	// List is deliberately NOT registered in the type-definition table: the
	// bracket-pattern sugar resolves to types.ListOf (a bare Generic), and a
	// source program must be free to declare its own
	// `type List<T> = Nil | Cons(T, List<T>)` union without colliding.
	_, ok = env.LookupType("List")
	assert.False(t, ok)

	_, variant, ok := env.LookupVariant("Ok")
	assert.True(t, ok)
	assert.Equal(t, "Ok", variant.Name)
}

func TestDeclareVariableRejectsDuplicateInSameScope(t *testing.T) {
	env := New()
	assert.NoError(t, env.DeclareVariable("x", types.TInt, false))
	err := env.DeclareVariable("x", types.TInt, false)
	assert.Error(t, err)
	var dup *DuplicateDefinitionError
	assert.ErrorAs(t, err, &dup)
}

func TestShadowingFromOuterScopeIsLegal(t *testing.T) {
	env := New()
	assert.NoError(t, env.DeclareVariable("x", types.TInt, false))
	env.PushScope()
	assert.NoError(t, env.DeclareVariable("x", types.TString, false))

	res := env.Lookup("x")
	assert.True(t, res.Binding.Type.Equals(types.TString))

	assert.NoError(t, env.PopScope())
	res = env.Lookup("x")
	assert.True(t, res.Binding.Type.Equals(types.TInt))
}

func TestPopScopeFailsOnGlobalFrame(t *testing.T) {
	env := New()
	err := env.PopScope()
	assert.Error(t, err)
	var underflow *ScopeUnderflowError
	assert.ErrorAs(t, err, &underflow)
}

func TestLookupWalksInnermostFirst(t *testing.T) {
	env := New()
	env.PushScope()
	env.PushScope()
	assert.NoError(t, env.DeclareVariable("y", types.TBoolean, true))

	res := env.Lookup("y")
	assert.True(t, res.Found)
	assert.True(t, res.Binding.Mutable)
}

func TestAssignValidatesMutabilityAndType(t *testing.T) {
	env := New()
	assert.NoError(t, env.DeclareVariable("count", types.TInt, true))
	assert.NoError(t, env.Assign("count", types.TInt))
	assert.Error(t, env.Assign("count", types.TString))

	assert.NoError(t, env.DeclareVariable("name", types.TString, false))
	err := env.Assign("name", types.TString)
	assert.Error(t, err)
}

func TestAssignUndefinedVariableFails(t *testing.T) {
	env := New()
	err := env.Assign("nope", types.TInt)
	assert.Error(t, err)
}

func TestDeclareTypeRejectsDuplicateName(t *testing.T) {
	env := New()
	def := &TypeDefinition{Name: "Color", Variants: []*VariantDef{
		{Name: "Red"}, {Name: "Green"}, {Name: "Blue"},
	}}
	assert.NoError(t, env.DeclareType(def))
	err := env.DeclareType(def)
	assert.Error(t, err)
}

func TestDeclareTypeRejectsDuplicateVariantName(t *testing.T) {
	env := New()
	def := &TypeDefinition{Name: "Bad", Variants: []*VariantDef{
		{Name: "A"}, {Name: "B"}, {Name: "A"},
	}}
	err := env.DeclareType(def)
	assert.Error(t, err)
}

func TestDeclareFunctionRejectsDuplicateName(t *testing.T) {
	env := New()
	sig := &FunctionSignature{Name: "f", ReturnType: types.TInt}
	assert.NoError(t, env.DeclareFunction(sig))
	err := env.DeclareFunction(&FunctionSignature{Name: "f", ReturnType: types.TString})
	assert.Error(t, err)
}

func TestEnclosingReturnStack(t *testing.T) {
	env := New()
	_, ok := env.EnclosingReturn()
	assert.False(t, ok)

	env.PushEnclosingReturn(types.TInt)
	ret, ok := env.EnclosingReturn()
	assert.True(t, ok)
	assert.True(t, ret.Equals(types.TInt))

	env.PopEnclosingReturn()
	_, ok = env.EnclosingReturn()
	assert.False(t, ok)
}

func TestNFCNormalizedNamesCollide(t *testing.T) {
	env := New()
	// "café" composed vs decomposed — declared once, looked up by either
	// spelling, must resolve to the same binding (identnorm boundary).
	assert.NoError(t, env.DeclareVariable("café", types.TInt, false))
	res := env.Lookup("café")
	assert.True(t, res.Found)
}
