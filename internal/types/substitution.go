package types

// Substitution is a finite map from TypeVar id to Type. The zero value
// behaves as the empty substitution; EmptySubstitution and
// SingleSubstitution are the usual constructors.
type Substitution struct {
	m map[string]Type
}

// EmptySubstitution returns the identity substitution.
func EmptySubstitution() *Substitution {
	return &Substitution{m: map[string]Type{}}
}

// SingleSubstitution returns a substitution mapping only tv -> t. The
// occurs check is the caller's responsibility — this constructor fails
// nothing on its own.
func SingleSubstitution(tv *TypeVar, t Type) *Substitution {
	return &Substitution{m: map[string]Type{tv.ID: t}}
}

// Lookup returns the type bound to id, if any.
func (s *Substitution) Lookup(id string) (Type, bool) {
	t, ok := s.m[id]
	return t, ok
}

// Domain returns the set of TypeVar ids this substitution maps.
func (s *Substitution) Domain() map[string]bool {
	out := make(map[string]bool, len(s.m))
	for id := range s.m {
		out[id] = true
	}
	return out
}

// Apply performs a recursive descent: each TypeVar (and each Named type
// whose name matches a mapped variable) is replaced by its binding.
func (s *Substitution) Apply(t Type) Type {
	if len(s.m) == 0 {
		return t
	}
	return t.Substitute(s.m)
}

// Compose returns c such that c.Apply(t) == s.Apply(other.Apply(t)) for
// every t. Implementation: apply s to every range element of other, then
// add every mapping from s whose domain is not already present. The
// result has no variable in both its domain and its range when s's own
// range mentions no variable bound by other, which is how Solve uses it
// (each new step is built from types the accumulated substitution has
// already been applied to); otherwise, e.g. {a:b}.Compose({b:Int}), the
// result {a:b, b:Int} is not idempotent.
func (s *Substitution) Compose(other *Substitution) *Substitution {
	merged := make(map[string]Type, len(s.m)+len(other.m))
	for id, t := range other.m {
		merged[id] = s.Apply(t)
	}
	for id, t := range s.m {
		if _, exists := merged[id]; !exists {
			merged[id] = t
		}
	}
	return &Substitution{m: merged}
}

// Extend returns a new substitution with tv -> t added (or overwritten).
func (s *Substitution) Extend(tv *TypeVar, t Type) *Substitution {
	merged := make(map[string]Type, len(s.m)+1)
	for id, v := range s.m {
		merged[id] = v
	}
	merged[tv.ID] = t
	return &Substitution{m: merged}
}

// Remove returns a new substitution with id removed from the domain.
func (s *Substitution) Remove(id string) *Substitution {
	merged := make(map[string]Type, len(s.m))
	for k, v := range s.m {
		if k != id {
			merged[k] = v
		}
	}
	return &Substitution{m: merged}
}

// Restrict returns a new substitution keeping only domain ids present in
// keep.
func (s *Substitution) Restrict(keep map[string]bool) *Substitution {
	merged := make(map[string]Type, len(s.m))
	for k, v := range s.m {
		if keep[k] {
			merged[k] = v
		}
	}
	return &Substitution{m: merged}
}

// IsEmpty reports whether the substitution has no mappings.
func (s *Substitution) IsEmpty() bool { return len(s.m) == 0 }

// ApplyToScheme applies s to a scheme's body, skipping quantified
// variables local to the scheme (they are bound, not free).
func (s *Substitution) ApplyToScheme(scheme *TypeScheme) *TypeScheme {
	if len(s.m) == 0 {
		return scheme
	}
	bound := make(map[string]bool, len(scheme.QuantifiedVars))
	for _, v := range scheme.QuantifiedVars {
		bound[v] = true
	}
	filtered := make(map[string]Type, len(s.m))
	for id, t := range s.m {
		if !bound[id] {
			filtered[id] = t
		}
	}
	return &TypeScheme{
		QuantifiedVars: scheme.QuantifiedVars,
		Body:           (&Substitution{m: filtered}).Apply(scheme.Body),
	}
}
