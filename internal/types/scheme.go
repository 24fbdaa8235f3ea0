package types

import (
	"sort"
	"strings"
)

// TypeScheme is `∀ quantified_vars . body`, the representation of
// let-polymorphism. A type is monomorphic iff QuantifiedVars is empty.
type TypeScheme struct {
	QuantifiedVars []string
	Body           Type
}

// Monomorphic wraps t as a scheme with no quantified variables.
func Monomorphic(t Type) *TypeScheme {
	return &TypeScheme{Body: t}
}

func (s *TypeScheme) String() string {
	if len(s.QuantifiedVars) == 0 {
		return s.Body.String()
	}
	return "forall " + strings.Join(s.QuantifiedVars, " ") + ". " + s.Body.String()
}

// Instantiate replaces every quantified variable with a fresh TypeVar
// (minted via the supplied fresh function, so callers control the counter)
// and returns the resulting concrete type.
func (s *TypeScheme) Instantiate(fresh func() *TypeVar) Type {
	if len(s.QuantifiedVars) == 0 {
		return s.Body
	}
	sub := make(map[string]Type, len(s.QuantifiedVars))
	for _, v := range s.QuantifiedVars {
		sub[v] = fresh()
	}
	return s.Body.Substitute(sub)
}

// Generalize closes over every free variable in t that is not already
// bound in the enclosing environment (the `envFree` set). The checker does
// not call it; local `val` bindings and lambdas are never generalized.
func Generalize(t Type, envFree map[string]bool) *TypeScheme {
	free := FreeTypeVariables(t)
	quantified := make([]string, 0, len(free))
	for id := range free {
		if !envFree[id] {
			quantified = append(quantified, id)
		}
	}
	sort.Strings(quantified)
	return &TypeScheme{QuantifiedVars: quantified, Body: t}
}
