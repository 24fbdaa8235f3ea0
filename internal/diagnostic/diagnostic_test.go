package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taylorlang/semantic/internal/types"
)

func TestCollectorFinishBareWhenSingleDiagnostic(t *testing.T) {
	c := NewCollector()
	c.Report(NewUnresolvedSymbol("x", nil))
	got := c.Finish()
	assert.Equal(t, UnresolvedSymbol, got.Kind)
}

func TestCollectorFinishWrapsWhenMultiple(t *testing.T) {
	c := NewCollector()
	c.Report(NewUnresolvedSymbol("x", nil))
	c.Report(NewUnresolvedSymbol("y", nil))
	got := c.Finish()
	assert.Equal(t, MultipleErrors, got.Kind)
	assert.Len(t, got.Causes, 2)
}

func TestCollectorFinishNilWhenEmpty(t *testing.T) {
	c := NewCollector()
	assert.Nil(t, c.Finish())
}

func TestCollectorPreservesDiscoveryOrder(t *testing.T) {
	c := NewCollector()
	c.Report(NewDuplicateDefinition("variable", "x", nil))
	c.Report(NewUnresolvedSymbol("y", nil))
	items := c.Items()
	assert.Equal(t, DuplicateDefinition, items[0].Kind)
	assert.Equal(t, UnresolvedSymbol, items[1].Kind)
}

func TestNewTypeMismatchCarriesBothTypes(t *testing.T) {
	d := NewTypeMismatch(types.TInt, types.TString, nil)
	assert.Equal(t, TypeMismatch, d.Kind)
	assert.Equal(t, "Int", d.Data["expected"])
	assert.Equal(t, "String", d.Data["actual"])
}

func TestNewNonExhaustiveMatchListsMissingVariants(t *testing.T) {
	d := NewNonExhaustiveMatch([]string{"Blue"}, nil)
	assert.Equal(t, []string{"Blue"}, d.MissingPatterns)
}

func TestToJSONIsValidAndStable(t *testing.T) {
	d := NewTypeMismatch(types.TInt, types.TString, &Location{Line: 1, Column: 2, Valid: true})
	js, err := d.ToJSON(false)
	assert.NoError(t, err)
	assert.Contains(t, js, `"kind":"TypeMismatch"`)
}

func TestWrapRefusesEmptyCauses(t *testing.T) {
	assert.Nil(t, Wrap(nil))
}
