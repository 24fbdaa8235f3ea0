package checker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taylorlang/semantic/internal/types"
	"github.com/taylorlang/semantic/internal/typedast"
	"github.com/taylorlang/semantic/testsupport"
)

func mustFixture(t *testing.T, name string) *testsupport.Fixture {
	t.Helper()
	fx, ok := testsupport.Lookup(name)
	require.True(t, ok, "fixture %q not registered", name)
	return &fx
}

func TestSimpleValInfersInt(t *testing.T) {
	types.ResetTypeVarCounterForTesting()
	fx := mustFixture(t, "simple-val")
	ck := New()
	typed, diag := ck.TypeCheck(fx.Program)
	require.Nil(t, diag)
	require.Len(t, typed.Items, 1)
	val, ok := typed.Items[0].(*typedast.TypedValueDecl)
	require.True(t, ok)
	assert.Equal(t, "Int", val.Type.String())
}

func TestOptionSomeInfersUnion(t *testing.T) {
	types.ResetTypeVarCounterForTesting()
	fx := mustFixture(t, "option-some")
	ck := New()
	typed, diag := ck.TypeCheck(fx.Program)
	require.Nil(t, diag)
	require.Len(t, typed.Items, 2)
	val, ok := typed.Items[1].(*typedast.TypedValueDecl)
	require.True(t, ok)
	assert.Equal(t, "Option<Int>", val.Type.String())
}

func TestAddFunctionTypeChecks(t *testing.T) {
	types.ResetTypeVarCounterForTesting()
	fx := mustFixture(t, "add-function")
	ck := New()
	_, diag := ck.TypeCheck(fx.Program)
	assert.Nil(t, diag)
}

func TestAddFunctionBadArgFailsWithTypeMismatch(t *testing.T) {
	types.ResetTypeVarCounterForTesting()
	fx := mustFixture(t, "add-function-bad-arg")
	ck := New()
	_, diag := ck.TypeCheck(fx.Program)
	require.NotNil(t, diag)
	assert.Equal(t, "TypeMismatch", string(diag.Kind))
}

func TestIfBranchMismatchReportsTypeMismatch(t *testing.T) {
	types.ResetTypeVarCounterForTesting()
	fx := mustFixture(t, "if-branch-mismatch")
	ck := New()
	_, diag := ck.TypeCheck(fx.Program)
	require.NotNil(t, diag)
	assert.Equal(t, "TypeMismatch", string(diag.Kind))
}

func TestColorNonExhaustiveListsMissingVariant(t *testing.T) {
	types.ResetTypeVarCounterForTesting()
	fx := mustFixture(t, "color-nonexhaustive")
	ck := New()
	_, diag := ck.TypeCheck(fx.Program)
	require.NotNil(t, diag)
	assert.Equal(t, "NonExhaustiveMatch", string(diag.Kind))
	assert.Contains(t, diag.MissingPatterns, "Blue")
}

func TestRecursiveListDeclarationAccepted(t *testing.T) {
	types.ResetTypeVarCounterForTesting()
	fx := mustFixture(t, "recursive-list")
	ck := New()
	_, diag := ck.TypeCheck(fx.Program)
	assert.Nil(t, diag)
}

func TestDuplicateVariantReported(t *testing.T) {
	types.ResetTypeVarCounterForTesting()
	fx := mustFixture(t, "duplicate-variant")
	ck := New()
	_, diag := ck.TypeCheck(fx.Program)
	require.NotNil(t, diag)
	assert.Equal(t, "DuplicateDefinition", string(diag.Kind))
}

func TestDuplicateFunctionReported(t *testing.T) {
	types.ResetTypeVarCounterForTesting()
	fx := mustFixture(t, "duplicate-function")
	ck := New()
	_, diag := ck.TypeCheck(fx.Program)
	require.NotNil(t, diag)
	assert.Equal(t, "DuplicateDefinition", string(diag.Kind))
}

func TestAlgorithmicStrategyAgreesWithConstraintBased(t *testing.T) {
	types.ResetTypeVarCounterForTesting()
	fx := mustFixture(t, "add-function")
	ck := &Checker{Strategy: Algorithmic}
	_, diag := ck.TypeCheck(fx.Program)
	assert.Nil(t, diag)
}
