// Package tenv implements the scoped typing environment: a stack of
// lexical scopes for variable bindings, plus flat global tables for type
// definitions and function signatures, built around an explicit scope
// stack with mutability tracking and separate variable/type/function
// namespaces.
package tenv

import (
	"fmt"

	"github.com/taylorlang/semantic/internal/identnorm"
	"github.com/taylorlang/semantic/internal/types"
)

// VariableBinding is one variable's type and mutability.
type VariableBinding struct {
	Type    types.Type
	Mutable bool
}

// scope is one frame of the lexical scope stack.
type scope struct {
	vars    map[string]*VariableBinding
	schemes map[string]*types.TypeScheme
}

func newScope() *scope {
	return &scope{vars: map[string]*VariableBinding{}, schemes: map[string]*types.TypeScheme{}}
}

// VariantDef is one constructor of a union TypeDefinition.
type VariantDef struct {
	Name       string
	FieldTypes []types.Type
}

// TypeDefinition describes a declared union type.
type TypeDefinition struct {
	Name       string
	TypeParams []string
	Variants   []*VariantDef
}

// Variant returns the variant of d named name, searching d.Variants in
// order, and whether it was found.
func (d *TypeDefinition) Variant(name string) (*VariantDef, bool) {
	for _, v := range d.Variants {
		if v.Name == name {
			return v, true
		}
	}
	return nil, false
}

// FunctionSignature describes a declared function's shape.
type FunctionSignature struct {
	Name       string
	TypeParams []string
	ParamTypes []types.Type
	ReturnType types.Type
}

// DuplicateDefinitionError is returned when a name collides within a
// namespace where redeclaration is forbidden.
type DuplicateDefinitionError struct {
	Namespace string
	Name      string
}

func (e *DuplicateDefinitionError) Error() string {
	return fmt.Sprintf("duplicate definition of %q in %s namespace", e.Name, e.Namespace)
}

// ScopeUnderflowError is returned by PopScope when only the global frame
// remains.
type ScopeUnderflowError struct{}

func (e *ScopeUnderflowError) Error() string {
	return "cannot pop the global scope"
}

// Environment is the typing environment: the scope stack for variables,
// the type-definition table, the function-signature table, and the
// enclosing function's declared return type (for validating try/return).
type Environment struct {
	scopes []*scope

	types     map[string]*TypeDefinition
	variants  map[string]string // variant name -> owning union name
	functions map[string]*FunctionSignature

	enclosingReturn []types.Type // stack mirroring function-body nesting
}

// New constructs an Environment with the global scope and built-in
// bindings populated (println, assert, Result<T,E>).
func New() *Environment {
	e := &Environment{
		scopes:    []*scope{newScope()},
		types:     map[string]*TypeDefinition{},
		variants:  map[string]string{},
		functions: map[string]*FunctionSignature{},
	}
	e.populateBuiltins()
	return e
}

func norm(name string) string { return identnorm.Normalize(name) }

// ---- Scope stack --------------------------------------------------------

// PushScope adds a fresh empty frame.
func (e *Environment) PushScope() {
	e.scopes = append(e.scopes, newScope())
}

// PopScope discards the top frame. Fails if only the global frame remains.
func (e *Environment) PopScope() error {
	if len(e.scopes) <= 1 {
		return &ScopeUnderflowError{}
	}
	e.scopes = e.scopes[:len(e.scopes)-1]
	return nil
}

func (e *Environment) top() *scope { return e.scopes[len(e.scopes)-1] }

// DeclareVariable binds name in the innermost scope. Fails with
// DuplicateDefinitionError if name is already bound there (shadowing an
// outer frame is legal).
func (e *Environment) DeclareVariable(name string, t types.Type, mutable bool) error {
	key := norm(name)
	top := e.top()
	if _, exists := top.vars[key]; exists {
		return &DuplicateDefinitionError{Namespace: "variable", Name: name}
	}
	if _, exists := top.schemes[key]; exists {
		return &DuplicateDefinitionError{Namespace: "variable", Name: name}
	}
	top.vars[key] = &VariableBinding{Type: t, Mutable: mutable}
	return nil
}

// DeclareScheme binds name to a polymorphic TypeScheme in the innermost
// scope. The checker itself does not call it: top-level functions are
// registered with DeclareFunction, and their type parameters are
// instantiated per call site in internal/infer.
func (e *Environment) DeclareScheme(name string, scheme *types.TypeScheme) error {
	key := norm(name)
	top := e.top()
	if _, exists := top.vars[key]; exists {
		return &DuplicateDefinitionError{Namespace: "variable", Name: name}
	}
	if _, exists := top.schemes[key]; exists {
		return &DuplicateDefinitionError{Namespace: "variable", Name: name}
	}
	top.schemes[key] = scheme
	return nil
}

// LookupResult is the outcome of looking up an identifier: either a
// monomorphic binding or a polymorphic scheme, never both.
type LookupResult struct {
	Binding *VariableBinding
	Scheme  *types.TypeScheme
	Found   bool
}

// Lookup walks the scope stack from innermost to outermost.
func (e *Environment) Lookup(name string) LookupResult {
	key := norm(name)
	for i := len(e.scopes) - 1; i >= 0; i-- {
		s := e.scopes[i]
		if b, ok := s.vars[key]; ok {
			return LookupResult{Binding: b, Found: true}
		}
		if sch, ok := s.schemes[key]; ok {
			return LookupResult{Scheme: sch, Found: true}
		}
	}
	return LookupResult{Found: false}
}

// Assign validates and records an assignment to an existing mutable
// variable, returning an error describing which precondition failed.
func (e *Environment) Assign(name string, rhsType types.Type) error {
	key := norm(name)
	for i := len(e.scopes) - 1; i >= 0; i-- {
		s := e.scopes[i]
		if b, ok := s.vars[key]; ok {
			if !b.Mutable {
				return fmt.Errorf("cannot assign to immutable variable %q", name)
			}
			if !rhsType.Equals(b.Type) {
				return fmt.Errorf("cannot assign %s to variable %q of type %s", rhsType, name, b.Type)
			}
			return nil
		}
		if _, ok := s.schemes[key]; ok {
			return fmt.Errorf("cannot assign to function %q", name)
		}
	}
	return fmt.Errorf("undefined variable %q", name)
}

// VisibleNames returns every variable, scheme, and function name visible
// from the current scope stack, innermost first. Used by the "did you
// mean" suggestion on UnresolvedSymbol diagnostics; not part of ordinary
// lookup, so it is not on any hot path.
func (e *Environment) VisibleNames() []string {
	var out []string
	for i := len(e.scopes) - 1; i >= 0; i-- {
		s := e.scopes[i]
		for name := range s.vars {
			out = append(out, name)
		}
		for name := range s.schemes {
			out = append(out, name)
		}
	}
	for name := range e.functions {
		out = append(out, name)
	}
	return out
}

// ---- Type definitions ---------------------------------------------------

// DeclareType registers a union type definition in the flat global
// namespace. Fails if the type name is already declared, or if the
// definition itself contains duplicate variant names.
func (e *Environment) DeclareType(def *TypeDefinition) error {
	hdr, err := e.DeclareTypeHeader(def.Name, def.TypeParams)
	if err != nil {
		return err
	}
	return e.FinalizeTypeVariants(hdr, def.Variants)
}

// DeclareTypeHeader registers name (with its type parameters) in the flat
// global type namespace with no variants yet, and returns the
// TypeDefinition the caller should mutate via FinalizeTypeVariants.
// Splitting declaration into header-then-variants lets a recursive union's
// own variant field types (e.g. `Cons(T, List<T>)`) resolve the
// self-reference against an already-visible name, without ever exposing a
// union's variant bodies before they are fully resolved.
func (e *Environment) DeclareTypeHeader(name string, typeParams []string) (*TypeDefinition, error) {
	key := norm(name)
	if _, exists := e.types[key]; exists {
		return nil, &DuplicateDefinitionError{Namespace: "type", Name: name}
	}
	def := &TypeDefinition{Name: name, TypeParams: typeParams}
	e.types[key] = def
	return def, nil
}

// FinalizeTypeVariants attaches variants to a TypeDefinition previously
// returned by DeclareTypeHeader, after validating the variant names are
// unique and registering each in the variant->union index.
func (e *Environment) FinalizeTypeVariants(def *TypeDefinition, variants []*VariantDef) error {
	seen := map[string]bool{}
	for _, v := range variants {
		vkey := norm(v.Name)
		if seen[vkey] {
			return &DuplicateDefinitionError{Namespace: "variant", Name: v.Name}
		}
		seen[vkey] = true
	}
	def.Variants = variants
	for _, v := range variants {
		e.variants[norm(v.Name)] = def.Name
	}
	return nil
}

// LookupType returns the TypeDefinition for name, if declared.
func (e *Environment) LookupType(name string) (*TypeDefinition, bool) {
	d, ok := e.types[norm(name)]
	return d, ok
}

// LookupVariant finds the union owning variant name, and the variant
// itself.
func (e *Environment) LookupVariant(name string) (*TypeDefinition, *VariantDef, bool) {
	unionName, ok := e.variants[norm(name)]
	if !ok {
		return nil, nil, false
	}
	def := e.types[norm(unionName)]
	variant, _ := def.Variant(name)
	return def, variant, true
}

// ---- Function signatures --------------------------------------------

// DeclareFunction registers a function signature in the flat global
// namespace. Fails if the name is already declared.
func (e *Environment) DeclareFunction(sig *FunctionSignature) error {
	key := norm(sig.Name)
	if _, exists := e.functions[key]; exists {
		return &DuplicateDefinitionError{Namespace: "function", Name: sig.Name}
	}
	e.functions[key] = sig
	return nil
}

// LookupFunction returns the FunctionSignature for name, if declared.
func (e *Environment) LookupFunction(name string) (*FunctionSignature, bool) {
	sig, ok := e.functions[norm(name)]
	return sig, ok
}

// ---- Enclosing function return type --------------------------------

// PushEnclosingReturn records the declared return type of the function
// body currently being walked (for validating try/return).
func (e *Environment) PushEnclosingReturn(t types.Type) {
	e.enclosingReturn = append(e.enclosingReturn, t)
}

// PopEnclosingReturn discards the most recently pushed enclosing return
// type.
func (e *Environment) PopEnclosingReturn() {
	if len(e.enclosingReturn) > 0 {
		e.enclosingReturn = e.enclosingReturn[:len(e.enclosingReturn)-1]
	}
}

// EnclosingReturn returns the declared return type of the innermost
// function body being walked, if any.
func (e *Environment) EnclosingReturn() (types.Type, bool) {
	if len(e.enclosingReturn) == 0 {
		return nil, false
	}
	return e.enclosingReturn[len(e.enclosingReturn)-1], true
}
