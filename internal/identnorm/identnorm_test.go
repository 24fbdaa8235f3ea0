package identnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCollapsesComposedAndDecomposedForms(t *testing.T) {
	composed := "café"   // e-acute as a single precomposed rune
	decomposed := "café" // plain e + combining acute accent (U+0301)
	assert.NotEqual(t, composed, decomposed, "precondition: the two spellings differ byte-for-byte")
	assert.Equal(t, Normalize(composed), Normalize(decomposed))
}

func TestNormalizeIsIdempotent(t *testing.T) {
	name := "identifier_1"
	assert.Equal(t, Normalize(name), Normalize(Normalize(name)))
}
