// Package identnorm normalizes identifier spellings so that
// visually-identical names entered with different Unicode encodings (e.g.
// a precomposed "é" vs. combining "e´") collide correctly at environment
// declare/lookup boundaries.
package identnorm

import "golang.org/x/text/unicode/norm"

// Normalize returns the NFC-normalized form of name, applied at the
// typing-environment declare/lookup boundary since this repo has no
// lexer of its own to normalize identifiers earlier.
func Normalize(name string) string {
	return norm.NFC.String(name)
}
