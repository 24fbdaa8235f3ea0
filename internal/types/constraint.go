package types

import "fmt"

// SourceLoc is the optional source location a Constraint carries, used
// solely for diagnostics.
type SourceLoc struct {
	Line   int
	Column int
	File   string
	Valid  bool
}

func (l SourceLoc) String() string {
	if !l.Valid {
		return "<unknown>"
	}
	if l.File == "" {
		return fmt.Sprintf("%d:%d", l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// ConstraintKind tags which shape a Constraint carries.
type ConstraintKind int

const (
	EqualityConstraint ConstraintKind = iota
	SubtypeConstraint
	InstanceConstraint
)

// Constraint is the sum of Equality/Subtype/Instance. Exactly one pair of
// (Left,Right) or (Var,Scheme) is meaningful depending on Kind.
type Constraint struct {
	Kind  ConstraintKind
	Left  Type
	Right Type

	Var    *TypeVar
	Scheme *TypeScheme

	Loc SourceLoc
}

// Equality builds an Equality(left, right) constraint.
func Equality(left, right Type, loc SourceLoc) Constraint {
	return Constraint{Kind: EqualityConstraint, Left: left, Right: right, Loc: loc}
}

// Subtype builds a Subtype(sub, sup) constraint.
func Subtype(sub, sup Type, loc SourceLoc) Constraint {
	return Constraint{Kind: SubtypeConstraint, Left: sub, Right: sup, Loc: loc}
}

// Instance builds an Instance(tv, scheme) constraint.
func Instance(tv *TypeVar, scheme *TypeScheme, loc SourceLoc) Constraint {
	return Constraint{Kind: InstanceConstraint, Var: tv, Scheme: scheme, Loc: loc}
}

func (c Constraint) String() string {
	switch c.Kind {
	case EqualityConstraint:
		return fmt.Sprintf("%s ~ %s", c.Left, c.Right)
	case SubtypeConstraint:
		return fmt.Sprintf("%s <: %s", c.Left, c.Right)
	case InstanceConstraint:
		return fmt.Sprintf("%s inst %s", c.Var, c.Scheme)
	default:
		return "<invalid constraint>"
	}
}

// ConstraintSet is an unordered multiset of constraints with union/filter/
// partition operations. Immutable: every operation returns a new set.
type ConstraintSet struct {
	items []Constraint
}

// NewConstraintSet builds a ConstraintSet from the given constraints.
func NewConstraintSet(cs ...Constraint) *ConstraintSet {
	items := make([]Constraint, len(cs))
	copy(items, cs)
	return &ConstraintSet{items: items}
}

// EmptyConstraintSet returns a ConstraintSet with no constraints.
func EmptyConstraintSet() *ConstraintSet { return &ConstraintSet{} }

// Items returns a defensive copy of the constraints in insertion order
// (insertion order is preserved deliberately: the unifier's FIFO worklist
// relies on it so failure messages refer to the first user-visible
// constraint).
func (cs *ConstraintSet) Items() []Constraint {
	out := make([]Constraint, len(cs.items))
	copy(out, cs.items)
	return out
}

// Len reports the number of constraints in the set.
func (cs *ConstraintSet) Len() int { return len(cs.items) }

// Union returns a new set containing the constraints of both sets, in
// cs's order followed by other's.
func (cs *ConstraintSet) Union(other *ConstraintSet) *ConstraintSet {
	out := make([]Constraint, 0, len(cs.items)+len(other.items))
	out = append(out, cs.items...)
	out = append(out, other.items...)
	return &ConstraintSet{items: out}
}

// Add returns a new set with c appended.
func (cs *ConstraintSet) Add(c Constraint) *ConstraintSet {
	out := make([]Constraint, len(cs.items)+1)
	copy(out, cs.items)
	out[len(cs.items)] = c
	return &ConstraintSet{items: out}
}

// Filter returns a new set containing only constraints for which pred
// returns true.
func (cs *ConstraintSet) Filter(pred func(Constraint) bool) *ConstraintSet {
	out := make([]Constraint, 0, len(cs.items))
	for _, c := range cs.items {
		if pred(c) {
			out = append(out, c)
		}
	}
	return &ConstraintSet{items: out}
}

// Partition splits cs into (matching, nonMatching) by pred.
func (cs *ConstraintSet) Partition(pred func(Constraint) bool) (*ConstraintSet, *ConstraintSet) {
	yes := make([]Constraint, 0, len(cs.items))
	no := make([]Constraint, 0, len(cs.items))
	for _, c := range cs.items {
		if pred(c) {
			yes = append(yes, c)
		} else {
			no = append(no, c)
		}
	}
	return &ConstraintSet{items: yes}, &ConstraintSet{items: no}
}
