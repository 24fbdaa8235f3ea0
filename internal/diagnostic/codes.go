package diagnostic

// Stable, machine-sortable codes for the ten diagnostic kinds, following a
// phase-prefixed taxonomy (PAR001, MOD001, LDR001, ... elsewhere in a
// larger toolchain). This core has exactly one phase, "typecheck", so the
// prefix is fixed.
const (
	TC001 = "TC001" // TypeMismatch
	TC002 = "TC002" // ArityMismatch
	TC003 = "TC003" // UnresolvedSymbol
	TC004 = "TC004" // DuplicateDefinition
	TC005 = "TC005" // InvalidOperation
	TC006 = "TC006" // NonExhaustiveMatch
	TC007 = "TC007" // InfiniteType
	TC008 = "TC008" // ResultErrorTypeViolation
	TC009 = "TC009" // UnknownPrimitiveType
	TC010 = "TC010" // MultipleErrors
)

const typecheckPhase = "typecheck"

var codeByKind = map[Kind]string{
	TypeMismatch:             TC001,
	ArityMismatch:            TC002,
	UnresolvedSymbol:         TC003,
	DuplicateDefinition:      TC004,
	InvalidOperation:         TC005,
	NonExhaustiveMatch:       TC006,
	InfiniteType:             TC007,
	ResultErrorTypeViolation: TC008,
	UnknownPrimitiveType:     TC009,
	MultipleErrors:           TC010,
}
