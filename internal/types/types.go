// Package types implements the type model, substitution, and constraint
// model of the TaylorLang semantic core.
//
// Types are immutable value objects compared by structural equality, each
// a small struct implementing String/Equals/Substitute.
package types

import (
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
)

// Type is the sum of all type forms: Primitive, Named, TypeVar, Generic,
// Function, Tuple, Nullable, Union.
type Type interface {
	fmt.Stringer
	// Equals reports structural equality, ignoring source locations.
	Equals(other Type) bool
	// Substitute applies a finite TypeVar->Type map, recursively.
	Substitute(sub map[string]Type) Type
}

// Primitive is a built-in scalar type (Int, Long, Float, Double, Boolean,
// String, Unit, Byte, Short).
type Primitive struct {
	Name string
}

func (p *Primitive) String() string { return p.Name }
func (p *Primitive) Equals(other Type) bool {
	o, ok := other.(*Primitive)
	return ok && o.Name == p.Name
}
func (p *Primitive) Substitute(map[string]Type) Type { return p }

// Named is a reference to a user-defined, non-generic, non-union type name
// (e.g. a type alias target that isn't itself a union/generic/function).
type Named struct {
	Name string
}

func (n *Named) String() string { return n.Name }
func (n *Named) Equals(other Type) bool {
	o, ok := other.(*Named)
	return ok && o.Name == n.Name
}
func (n *Named) Substitute(sub map[string]Type) Type {
	// A Named type whose name matches a bound TypeVar id acts as a reference
	// to that variable — this is how identifier-level type variables are
	// spelled in the source.
	if t, ok := sub[n.Name]; ok {
		return t
	}
	return n
}

// TypeVar is a type variable, identified by a globally unique id minted
// from the process-wide atomic counter.
type TypeVar struct {
	ID string
}

func (t *TypeVar) String() string { return t.ID }
func (t *TypeVar) Equals(other Type) bool {
	o, ok := other.(*TypeVar)
	return ok && o.ID == t.ID
}
func (t *TypeVar) Substitute(sub map[string]Type) Type {
	if replacement, ok := sub[t.ID]; ok {
		return replacement
	}
	return t
}

var typeVarCounter uint64

// NewTypeVar mints a fresh, globally unique TypeVar. Safe for concurrent
// use: backed by sync/atomic, never by a package-level mutex.
func NewTypeVar() *TypeVar {
	n := atomic.AddUint64(&typeVarCounter, 1)
	return &TypeVar{ID: fmt.Sprintf("t%d", n)}
}

// ResetTypeVarCounterForTesting resets the global counter to zero. Tests
// only, for deterministic output.
func ResetTypeVarCounterForTesting() {
	atomic.StoreUint64(&typeVarCounter, 0)
}

// Generic is a user-defined parametric type application, e.g. Option<Int>.
type Generic struct {
	Name string
	Args []Type
}

func (g *Generic) String() string {
	parts := make([]string, len(g.Args))
	for i, a := range g.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s<%s>", g.Name, strings.Join(parts, ", "))
}
func (g *Generic) Equals(other Type) bool {
	o, ok := other.(*Generic)
	if !ok || o.Name != g.Name || len(o.Args) != len(g.Args) {
		return false
	}
	for i := range g.Args {
		if !g.Args[i].Equals(o.Args[i]) {
			return false
		}
	}
	return true
}
func (g *Generic) Substitute(sub map[string]Type) Type {
	args := make([]Type, len(g.Args))
	for i, a := range g.Args {
		args[i] = a.Substitute(sub)
	}
	return &Generic{Name: g.Name, Args: args}
}

// Function is a function type `(params...) -> ret`.
type Function struct {
	Params []Type
	Return Type
}

func (f *Function) String() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.String()
	}
	return fmt.Sprintf("(%s) -> %s", strings.Join(parts, ", "), f.Return)
}
func (f *Function) Equals(other Type) bool {
	o, ok := other.(*Function)
	if !ok || len(o.Params) != len(f.Params) {
		return false
	}
	for i := range f.Params {
		if !f.Params[i].Equals(o.Params[i]) {
			return false
		}
	}
	return f.Return.Equals(o.Return)
}
func (f *Function) Substitute(sub map[string]Type) Type {
	params := make([]Type, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.Substitute(sub)
	}
	return &Function{Params: params, Return: f.Return.Substitute(sub)}
}

// Tuple is a fixed-arity product type.
type Tuple struct {
	Elements []Type
}

func (t *Tuple) String() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
func (t *Tuple) Equals(other Type) bool {
	o, ok := other.(*Tuple)
	if !ok || len(o.Elements) != len(t.Elements) {
		return false
	}
	for i := range t.Elements {
		if !t.Elements[i].Equals(o.Elements[i]) {
			return false
		}
	}
	return true
}
func (t *Tuple) Substitute(sub map[string]Type) Type {
	elems := make([]Type, len(t.Elements))
	for i, e := range t.Elements {
		elems[i] = e.Substitute(sub)
	}
	return &Tuple{Elements: elems}
}

// Nullable is `T?`.
type Nullable struct {
	Base Type
}

func (n *Nullable) String() string { return n.Base.String() + "?" }
func (n *Nullable) Equals(other Type) bool {
	o, ok := other.(*Nullable)
	return ok && n.Base.Equals(o.Base)
}
func (n *Nullable) Substitute(sub map[string]Type) Type {
	return &Nullable{Base: n.Base.Substitute(sub)}
}

// Union is an algebraic data type reference: a name plus instantiated type
// arguments. Recursive unions are represented structurally by this
// name+args pair, never by expanding variant bodies — this is what lets
// the occurs check and unifier treat `List<T>` as distinct from `T`.
type Union struct {
	Name    string
	TypeArgs []Type
}

func (u *Union) String() string {
	if len(u.TypeArgs) == 0 {
		return u.Name
	}
	parts := make([]string, len(u.TypeArgs))
	for i, a := range u.TypeArgs {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s<%s>", u.Name, strings.Join(parts, ", "))
}
func (u *Union) Equals(other Type) bool {
	o, ok := other.(*Union)
	if !ok || o.Name != u.Name || len(o.TypeArgs) != len(u.TypeArgs) {
		return false
	}
	for i := range u.TypeArgs {
		if !u.TypeArgs[i].Equals(o.TypeArgs[i]) {
			return false
		}
	}
	return true
}
func (u *Union) Substitute(sub map[string]Type) Type {
	args := make([]Type, len(u.TypeArgs))
	for i, a := range u.TypeArgs {
		args[i] = a.Substitute(sub)
	}
	return &Union{Name: u.Name, TypeArgs: args}
}

// ---- Free type variables ---------------------------------------------

// FreeTypeVariables returns the set of TypeVar IDs appearing free in t.
func FreeTypeVariables(t Type) map[string]bool {
	free := make(map[string]bool)
	collectFreeTypeVars(t, free)
	return free
}

func collectFreeTypeVars(t Type, out map[string]bool) {
	switch v := t.(type) {
	case *TypeVar:
		out[v.ID] = true
	case *Generic:
		for _, a := range v.Args {
			collectFreeTypeVars(a, out)
		}
	case *Function:
		for _, p := range v.Params {
			collectFreeTypeVars(p, out)
		}
		collectFreeTypeVars(v.Return, out)
	case *Tuple:
		for _, e := range v.Elements {
			collectFreeTypeVars(e, out)
		}
	case *Nullable:
		collectFreeTypeVars(v.Base, out)
	case *Union:
		for _, a := range v.TypeArgs {
			collectFreeTypeVars(a, out)
		}
	case *Primitive, *Named:
		// No free variables; a Named type is resolved against the
		// substitution map directly by Substitute, not inspected here.
	}
}

// FreeTypeVariableList returns FreeTypeVariables as a sorted slice, for
// deterministic diagnostics and tests.
func FreeTypeVariableList(t Type) []string {
	free := FreeTypeVariables(t)
	out := make([]string, 0, len(free))
	for id := range free {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// ---- Numeric widening lattice -----------------------------------------

// numericRank orders the built-in numeric primitives for widening:
// Byte < Short < Int < Long < Float < Double.
var numericRank = map[string]int{
	"Byte": 0, "Short": 1, "Int": 2, "Long": 3, "Float": 4, "Double": 5,
}

// IsNumeric reports whether t is one of the built-in numeric primitives.
func IsNumeric(t Type) bool {
	p, ok := t.(*Primitive)
	if !ok {
		return false
	}
	_, ok = numericRank[p.Name]
	return ok
}

// NumericRank returns t's position in the widening lattice, and whether t
// is a recognized numeric primitive at all.
func NumericRank(t Type) (int, bool) {
	p, ok := t.(*Primitive)
	if !ok {
		return 0, false
	}
	r, ok := numericRank[p.Name]
	return r, ok
}

// Wider returns the wider of two numeric primitives, and false if either
// is not a recognized numeric primitive.
func Wider(a, b Type) (Type, bool) {
	ra, ok := NumericRank(a)
	if !ok {
		return nil, false
	}
	rb, ok := NumericRank(b)
	if !ok {
		return nil, false
	}
	if ra >= rb {
		return a, true
	}
	return b, true
}

// ---- Built-in primitive constructors -----------------------------------

var (
	TByte    = &Primitive{Name: "Byte"}
	TShort   = &Primitive{Name: "Short"}
	TInt     = &Primitive{Name: "Int"}
	TLong    = &Primitive{Name: "Long"}
	TFloat   = &Primitive{Name: "Float"}
	TDouble  = &Primitive{Name: "Double"}
	TBoolean = &Primitive{Name: "Boolean"}
	TString  = &Primitive{Name: "String"}
	TUnit    = &Primitive{Name: "Unit"}
)

// BuiltinPrimitiveNames is the fixed set of recognized primitive type names,
// used by validate(type) to reject unknown primitives.
var BuiltinPrimitiveNames = map[string]bool{
	"Byte": true, "Short": true, "Int": true, "Long": true,
	"Float": true, "Double": true, "Boolean": true, "String": true, "Unit": true,
}

// Throwable is the fixed sentinel type that Result<T, E>'s E parameter must
// be a subtype of.
var Throwable = &Named{Name: "Throwable"}

// NewResultType constructs Result<T, E>. Represented as a Union (not a
// bare Generic) so that constructor patterns/calls against Ok/Err — which
// require a Union scrutinee — work the same way they would for any other
// source-declared union.
func NewResultType(okType, errType Type) *Union {
	return &Union{Name: "Result", TypeArgs: []Type{okType, errType}}
}

// IsThrowableCompatible reports whether t may stand in as Result<_, E>'s E
// parameter: E must be a subtype of the fixed Throwable sentinel. Only the
// sentinel itself and not-yet-resolved TypeVars pass; every other concrete
// type is rejected, since subtyping here is deliberately minimal and
// defines no broader Throwable hierarchy.
func IsThrowableCompatible(t Type) bool {
	switch v := t.(type) {
	case *TypeVar:
		return true
	case *Named:
		return v.Name == Throwable.Name
	default:
		return false
	}
}

// ListOf constructs List<elem>, the built-in generic used by list patterns.
func ListOf(elem Type) *Generic {
	return &Generic{Name: "List", Args: []Type{elem}}
}
