// Package diagnostic is the structured error-reporting sink for the
// semantic core: one stable code per error kind, a deterministic JSON
// encoding, and a per-item Collector that lets checking continue past
// the first failure. The taxonomy is a fixed ten kinds, each with a
// stable, schema-tagged JSON encoding.
package diagnostic

import (
	"encoding/json"
	"fmt"
)

// Kind is one of the ten recognized error kinds.
type Kind string

const (
	TypeMismatch             Kind = "TypeMismatch"
	ArityMismatch            Kind = "ArityMismatch"
	UnresolvedSymbol         Kind = "UnresolvedSymbol"
	DuplicateDefinition      Kind = "DuplicateDefinition"
	InvalidOperation         Kind = "InvalidOperation"
	NonExhaustiveMatch       Kind = "NonExhaustiveMatch"
	InfiniteType             Kind = "InfiniteType"
	ResultErrorTypeViolation Kind = "ResultErrorTypeViolation"
	UnknownPrimitiveType     Kind = "UnknownPrimitiveType"
	MultipleErrors           Kind = "MultipleErrors"
)

// Location is the optional {line, column, file} triple a diagnostic
// carries when available.
type Location struct {
	Line   int    `json:"line,omitempty"`
	Column int    `json:"column,omitempty"`
	File   string `json:"file,omitempty"`
	Valid  bool   `json:"-"`
}

// Fix is an optional suggested remedy attached to a Diagnostic.
type Fix struct {
	Suggestion string  `json:"suggestion"`
	Confidence float64 `json:"confidence"`
}

// Diagnostic is the canonical structured error value of the core.
type Diagnostic struct {
	Schema          string         `json:"schema"`
	Code            string         `json:"code,omitempty"`
	Phase           string         `json:"phase,omitempty"`
	Kind            Kind           `json:"kind"`
	Message         string         `json:"message"`
	Location        *Location      `json:"location,omitempty"`
	MissingPatterns []string       `json:"missingPatterns,omitempty"`
	Data            map[string]any `json:"data,omitempty"`
	Fix             *Fix           `json:"fix,omitempty"`
	Causes          []*Diagnostic  `json:"causes,omitempty"`
}

func (d *Diagnostic) Error() string {
	if d.Location != nil && d.Location.Valid {
		return fmt.Sprintf("%s: %s at %d:%d", d.Kind, d.Message, d.Location.Line, d.Location.Column)
	}
	return fmt.Sprintf("%s: %s", d.Kind, d.Message)
}

// ToJSON renders the diagnostic deterministically (struct field order,
// not map iteration).
func (d *Diagnostic) ToJSON(indent bool) (string, error) {
	var data []byte
	var err error
	if indent {
		data, err = json.MarshalIndent(d, "", "  ")
	} else {
		data, err = json.Marshal(d)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

const schemaVersion = "taylorlang.diagnostic/v1"

func newDiagnostic(kind Kind, message string, loc *Location) *Diagnostic {
	return &Diagnostic{
		Schema:  schemaVersion,
		Code:    codeByKind[kind],
		Phase:   typecheckPhase,
		Kind:    kind,
		Message: message,
		Location: loc,
	}
}

// NewTypeMismatch builds a TypeMismatch diagnostic for two types that
// failed to unify at a concrete leaf.
func NewTypeMismatch(expected, actual fmt.Stringer, loc *Location) *Diagnostic {
	d := newDiagnostic(TypeMismatch, fmt.Sprintf("expected %s, found %s", expected, actual), loc)
	d.Data = map[string]any{"expected": expected.String(), "actual": actual.String()}
	return d
}

// NewArityMismatch builds an ArityMismatch diagnostic.
func NewArityMismatch(what string, expected, actual int, loc *Location) *Diagnostic {
	d := newDiagnostic(ArityMismatch, fmt.Sprintf("%s expects %d argument(s), got %d", what, expected, actual), loc)
	d.Data = map[string]any{"expected": expected, "actual": actual}
	return d
}

// NewArityMismatchTypes builds an ArityMismatch diagnostic between two
// types whose structural arity (generic args, tuple elements, function
// params) disagreed — the shape the unifier detects, as opposed to the
// call-site argument-count shape NewArityMismatch covers.
func NewArityMismatchTypes(a, b fmt.Stringer, loc *Location) *Diagnostic {
	d := newDiagnostic(ArityMismatch, fmt.Sprintf("arity mismatch between %s and %s", a, b), loc)
	d.Data = map[string]any{"a": a.String(), "b": b.String()}
	return d
}

// NewUnresolvedSymbol builds an UnresolvedSymbol diagnostic.
func NewUnresolvedSymbol(name string, loc *Location) *Diagnostic {
	return newDiagnostic(UnresolvedSymbol, fmt.Sprintf("unresolved identifier %q", name), loc)
}

// NewUnresolvedSymbolWithSuggestion builds an UnresolvedSymbol diagnostic
// carrying a "did you mean" Fix.
func NewUnresolvedSymbolWithSuggestion(name, suggestion string, confidence float64, loc *Location) *Diagnostic {
	d := NewUnresolvedSymbol(name, loc)
	if suggestion != "" {
		d.Fix = &Fix{Suggestion: fmt.Sprintf("did you mean %q?", suggestion), Confidence: confidence}
	}
	return d
}

// NewDuplicateDefinition builds a DuplicateDefinition diagnostic.
func NewDuplicateDefinition(namespace, name string, loc *Location) *Diagnostic {
	return newDiagnostic(DuplicateDefinition, fmt.Sprintf("%q is already defined in the %s namespace", name, namespace), loc)
}

// NewInvalidOperation builds an InvalidOperation diagnostic.
func NewInvalidOperation(op string, operand fmt.Stringer, loc *Location) *Diagnostic {
	return newDiagnostic(InvalidOperation, fmt.Sprintf("operator %q does not support operand type %s", op, operand), loc)
}

// NewNonExhaustiveMatch builds a NonExhaustiveMatch diagnostic listing the
// missing variant names.
func NewNonExhaustiveMatch(missing []string, loc *Location) *Diagnostic {
	d := newDiagnostic(NonExhaustiveMatch, fmt.Sprintf("match is not exhaustive, missing: %v", missing), loc)
	d.MissingPatterns = missing
	return d
}

// NewInfiniteType builds an InfiniteType (occurs-check) diagnostic.
func NewInfiniteType(v, t fmt.Stringer, loc *Location) *Diagnostic {
	return newDiagnostic(InfiniteType, fmt.Sprintf("infinite type: %s occurs in %s", v, t), loc)
}

// NewResultErrorTypeViolation builds a ResultErrorTypeViolation diagnostic.
func NewResultErrorTypeViolation(errType fmt.Stringer, loc *Location) *Diagnostic {
	return newDiagnostic(ResultErrorTypeViolation, fmt.Sprintf("%s is not a subtype of Throwable", errType), loc)
}

// NewUnknownPrimitiveType builds an UnknownPrimitiveType diagnostic.
func NewUnknownPrimitiveType(name string, loc *Location) *Diagnostic {
	return newDiagnostic(UnknownPrimitiveType, fmt.Sprintf("%q is not a known primitive type", name), loc)
}

// Wrap aggregates two or more diagnostics as MultipleErrors. Callers
// enforce the >=2 threshold; Wrap itself only refuses to build a
// degenerate empty aggregate.
func Wrap(causes []*Diagnostic) *Diagnostic {
	if len(causes) == 0 {
		return nil
	}
	d := newDiagnostic(MultipleErrors, fmt.Sprintf("%d errors", len(causes)), nil)
	d.Causes = causes
	return d
}
