package patcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taylorlang/semantic/internal/ast"
	"github.com/taylorlang/semantic/internal/tenv"
	"github.com/taylorlang/semantic/internal/types"
)

func declareColor(env *tenv.Environment) {
	_ = env.DeclareType(&tenv.TypeDefinition{
		Name: "Color",
		Variants: []*tenv.VariantDef{
			{Name: "Red"}, {Name: "Green"}, {Name: "Blue"},
		},
	})
}

func declareOption(env *tenv.Environment) {
	_ = env.DeclareType(&tenv.TypeDefinition{
		Name:       "Option",
		TypeParams: []string{"T"},
		Variants: []*tenv.VariantDef{
			{Name: "Some", FieldTypes: []types.Type{&types.Named{Name: "T"}}},
			{Name: "None"},
		},
	})
}

func TestWildcardIsIrrefutableAndBindsNothing(t *testing.T) {
	info, diag := Check(&ast.WildcardPattern{}, types.TInt, tenv.New())
	assert.Nil(t, diag)
	assert.True(t, info.Irrefutable)
	assert.Empty(t, info.Bindings)
}

func TestIdentifierBindsScrutineeType(t *testing.T) {
	info, diag := Check(&ast.IdentifierPattern{Name: "x"}, types.TInt, tenv.New())
	assert.Nil(t, diag)
	assert.True(t, info.Bindings["x"].Equals(types.TInt))
}

func TestLiteralPatternMustMatchType(t *testing.T) {
	_, diag := Check(&ast.LiteralPattern{Kind: ast.IntLit, Value: 1}, types.TInt, tenv.New())
	assert.Nil(t, diag)

	_, diag = Check(&ast.LiteralPattern{Kind: ast.StringLit, Value: "x"}, types.TInt, tenv.New())
	assert.NotNil(t, diag)
}

func TestConstructorPatternBindsFieldTypesSubstituted(t *testing.T) {
	env := tenv.New()
	declareOption(env)

	scrutinee := &types.Union{Name: "Option", TypeArgs: []types.Type{types.TInt}}
	pattern := &ast.ConstructorPattern{
		Name: "Some",
		Args: []ast.Pattern{&ast.IdentifierPattern{Name: "v"}},
	}
	info, diag := Check(pattern, scrutinee, env)
	assert.Nil(t, diag)
	assert.True(t, info.Bindings["v"].Equals(types.TInt))
	assert.True(t, info.CoveredVariants["Some"])
}

func TestConstructorPatternArityMismatch(t *testing.T) {
	env := tenv.New()
	declareOption(env)
	scrutinee := &types.Union{Name: "Option", TypeArgs: []types.Type{types.TInt}}
	pattern := &ast.ConstructorPattern{Name: "Some", Args: []ast.Pattern{}}
	_, diag := Check(pattern, scrutinee, env)
	assert.NotNil(t, diag)
}

func TestTuplePatternRecursesPairwise(t *testing.T) {
	env := tenv.New()
	scrutinee := &types.Tuple{Elements: []types.Type{types.TInt, types.TString}}
	pattern := &ast.TuplePattern{Elements: []ast.Pattern{
		&ast.IdentifierPattern{Name: "a"},
		&ast.IdentifierPattern{Name: "b"},
	}}
	info, diag := Check(pattern, scrutinee, env)
	assert.Nil(t, diag)
	assert.True(t, info.Bindings["a"].Equals(types.TInt))
	assert.True(t, info.Bindings["b"].Equals(types.TString))
}

func TestListPatternBindsElementsAndRest(t *testing.T) {
	env := tenv.New()
	scrutinee := types.ListOf(types.TInt)
	pattern := &ast.ListPattern{
		Elements: []ast.Pattern{&ast.IdentifierPattern{Name: "head"}},
		HasRest:  true,
		Rest:     "tail",
	}
	info, diag := Check(pattern, scrutinee, env)
	assert.Nil(t, diag)
	assert.True(t, info.Bindings["head"].Equals(types.TInt))
	assert.True(t, info.Bindings["tail"].Equals(types.ListOf(types.TInt)))
}

func TestDuplicateBindingNameRejected(t *testing.T) {
	env := tenv.New()
	pattern := &ast.TuplePattern{Elements: []ast.Pattern{
		&ast.IdentifierPattern{Name: "x"},
		&ast.IdentifierPattern{Name: "x"},
	}}
	_, diag := Check(pattern, &types.Tuple{Elements: []types.Type{types.TInt, types.TInt}}, env)
	assert.NotNil(t, diag)
}

func TestExhaustivenessAllVariantsCovered(t *testing.T) {
	env := tenv.New()
	declareColor(env)
	cases := []*ast.Case{
		{Pattern: &ast.ConstructorPattern{Name: "Red"}},
		{Pattern: &ast.ConstructorPattern{Name: "Green"}},
		{Pattern: &ast.ConstructorPattern{Name: "Blue"}},
	}
	missing := CheckExhaustiveness(cases, &types.Union{Name: "Color"}, env)
	assert.Nil(t, missing)
}

func TestExhaustivenessReportsMissingVariant(t *testing.T) {
	env := tenv.New()
	declareColor(env)
	cases := []*ast.Case{
		{Pattern: &ast.ConstructorPattern{Name: "Red"}},
		{Pattern: &ast.ConstructorPattern{Name: "Green"}},
	}
	missing := CheckExhaustiveness(cases, &types.Union{Name: "Color"}, env)
	assert.Equal(t, []string{"Blue"}, missing)
}

func TestExhaustivenessWildcardCatchAll(t *testing.T) {
	env := tenv.New()
	declareColor(env)
	cases := []*ast.Case{
		{Pattern: &ast.ConstructorPattern{Name: "Red"}},
		{Pattern: &ast.WildcardPattern{}},
	}
	missing := CheckExhaustiveness(cases, &types.Union{Name: "Color"}, env)
	assert.Nil(t, missing)
}

func TestExhaustivenessGuardedCaseDoesNotCount(t *testing.T) {
	env := tenv.New()
	declareColor(env)
	cases := []*ast.Case{
		{Pattern: &ast.ConstructorPattern{Name: "Red"}},
		{Pattern: &ast.ConstructorPattern{Name: "Green"}},
		{Pattern: &ast.ConstructorPattern{Name: "Blue"}, Guard: &ast.Literal{Kind: ast.BoolLit, Value: true}},
	}
	missing := CheckExhaustiveness(cases, &types.Union{Name: "Color"}, env)
	assert.Equal(t, []string{"Blue"}, missing)
}

func TestExhaustivenessNonUnionWithoutCatchAllIsNotExhaustive(t *testing.T) {
	env := tenv.New()
	cases := []*ast.Case{
		{Pattern: &ast.LiteralPattern{Kind: ast.IntLit, Value: int64(1)}},
		{Pattern: &ast.LiteralPattern{Kind: ast.IntLit, Value: int64(2)}},
	}
	missing := CheckExhaustiveness(cases, types.TInt, env)
	assert.NotEmpty(t, missing)
}

func TestExhaustivenessNonUnionWithCatchAllIsExhaustive(t *testing.T) {
	env := tenv.New()
	cases := []*ast.Case{
		{Pattern: &ast.LiteralPattern{Kind: ast.IntLit, Value: int64(1)}},
		{Pattern: &ast.WildcardPattern{}},
	}
	missing := CheckExhaustiveness(cases, types.TInt, env)
	assert.Nil(t, missing)
}
