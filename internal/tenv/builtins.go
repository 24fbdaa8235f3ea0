package tenv

import "github.com/taylorlang/semantic/internal/types"

// populateBuiltins installs the fixed built-in bindings required on
// construction: println, assert, Result<T,E>, and the variant
// constructors of built-in union types.
func (e *Environment) populateBuiltins() {
	mustDeclare(e.DeclareVariable("println", &types.Function{
		Params: []types.Type{types.TString},
		Return: types.TUnit,
	}, false))

	mustDeclare(e.DeclareVariable("assert", &types.Function{
		Params: []types.Type{types.TBoolean},
		Return: types.TUnit,
	}, false))

	mustDeclare(e.DeclareType(&TypeDefinition{
		Name:       "Result",
		TypeParams: []string{"T", "E"},
		Variants: []*VariantDef{
			{Name: "Ok", FieldTypes: []types.Type{&types.Named{Name: "T"}}},
			{Name: "Err", FieldTypes: []types.Type{&types.Named{Name: "E"}}},
		},
	}))

	// The `List` named in list-bracket patterns and types.ListOf is the
	// Generic("List", [T]) form, deliberately never registered in the
	// type-definition table: a source program is free to declare its own
	// `type List<T> = Nil | Cons(T, List<T>)` union without colliding with it.
}

func mustDeclare(err error) {
	if err != nil {
		panic("tenv: builtin declaration failed: " + err.Error())
	}
}
