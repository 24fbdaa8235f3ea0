package checker

import (
	"fmt"

	"github.com/taylorlang/semantic/internal/tenv"
	"github.com/taylorlang/semantic/internal/types"
)

// ValidationResult is the outcome of validating a type's structural
// well-formedness, independent of any particular expression's inferred
// type.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

func ok() ValidationResult { return ValidationResult{Valid: true} }

func invalid(format string, args ...any) ValidationResult {
	return ValidationResult{Valid: false, Errors: []string{fmt.Sprintf(format, args...)}}
}

// Validate checks t structurally against env's declared types: every
// Named/Primitive name is known, every Generic/Union's argument count
// matches its declaration's type-parameter count, and no Named reference
// points at something undeclared. TypeCheck does not call Validate; it
// is a separate entry point for callers that want a structural check.
func Validate(t types.Type, env *tenv.Environment) ValidationResult {
	var errs []string
	validateInto(t, env, &errs)
	if len(errs) > 0 {
		return ValidationResult{Valid: false, Errors: errs}
	}
	return ok()
}

func validateInto(t types.Type, env *tenv.Environment, errs *[]string) {
	switch v := t.(type) {
	case *types.Primitive:
		if !types.BuiltinPrimitiveNames[v.Name] {
			*errs = append(*errs, fmt.Sprintf("%q is not a known primitive type", v.Name))
		}
	case *types.Named:
		if v.Name == types.Throwable.Name {
			return
		}
		if _, found := env.LookupType(v.Name); !found {
			*errs = append(*errs, fmt.Sprintf("%q refers to no declared type", v.Name))
		}
	case *types.TypeVar:
		// Type variables are accepted as valid; they are not checked
		// against any set of in-scope type parameters.
	case *types.Generic:
		validateArity(v.Name, len(v.Args), env, errs)
		for _, a := range v.Args {
			validateInto(a, env, errs)
		}
	case *types.Union:
		validateArity(v.Name, len(v.TypeArgs), env, errs)
		for _, a := range v.TypeArgs {
			validateInto(a, env, errs)
		}
	case *types.Function:
		for _, p := range v.Params {
			validateInto(p, env, errs)
		}
		validateInto(v.Return, env, errs)
	case *types.Tuple:
		for _, e := range v.Elements {
			validateInto(e, env, errs)
		}
	case *types.Nullable:
		validateInto(v.Base, env, errs)
	default:
		*errs = append(*errs, fmt.Sprintf("unrecognized type form %T", t))
	}
}

// validateArity reports a mismatch between name's declared type-parameter
// count and the number of arguments actually applied. "List" is the one
// builtin with fixed arity but no tenv.TypeDefinition entry (its
// bracket-pattern sugar is deliberately never registered, see
// builtins.go), so it's checked directly rather than via LookupType;
// "Result" is a registered builtin and goes through the normal path below.
func validateArity(name string, argc int, env *tenv.Environment, errs *[]string) {
	if name == "List" {
		if argc != 1 {
			*errs = append(*errs, fmt.Sprintf("List takes 1 type argument, got %d", argc))
		}
		return
	}
	def, found := env.LookupType(name)
	if !found {
		*errs = append(*errs, fmt.Sprintf("%q refers to no declared type", name))
		return
	}
	if len(def.TypeParams) != argc {
		*errs = append(*errs, fmt.Sprintf("%s takes %d type argument(s), got %d", name, len(def.TypeParams), argc))
	}
}
