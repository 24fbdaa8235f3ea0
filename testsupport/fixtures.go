package testsupport

import "github.com/taylorlang/semantic/internal/ast"

// Fixture is one named, pre-built program, registered so the CLI's `check`
// command and REPL fixture picker (cmd/taylorcheck) and the checker's own
// tests share the same corpus instead of drifting apart.
type Fixture struct {
	Name        string
	Description string
	Program     *ast.Program
}

var registry = []Fixture{
	{
		Name:        "simple-val",
		Description: "val x = 42",
		Program:     Program(Val("x", Int(42), nil)),
	},
	{
		Name:        "option-some",
		Description: "type Option<T> = Some(T) | None; val x = Some(42)",
		Program: Program(
			TypeDecl("Option", []string{"T"},
				Variant("Some", Simple("T")),
				Variant("None"),
			),
			Val("x", Ctor("Some", Int(42)), nil),
		),
	},
	{
		Name:        "add-function",
		Description: "fn add(x: Int, y: Int): Int => x + y; val r = add(1, 2)",
		Program: Program(
			Func("add", Simple("Int"), Bin(ast.OpAdd, Ident("x"), Ident("y")),
				FuncParam("x", Simple("Int")), FuncParam("y", Simple("Int"))),
			Val("r", Call(Ident("add"), Int(1), Int(2)), nil),
		),
	},
	{
		Name:        "add-function-bad-arg",
		Description: "fn add(x: Int, y: Int): Int => x + y; val r = add(\"a\", 1) -- TypeMismatch",
		Program: Program(
			Func("add", Simple("Int"), Bin(ast.OpAdd, Ident("x"), Ident("y")),
				FuncParam("x", Simple("Int")), FuncParam("y", Simple("Int"))),
			Val("r", Call(Ident("add"), Str("a"), Int(1)), nil),
		),
	},
	{
		Name:        "if-branch-mismatch",
		Description: "val r = if (true) 42 else \"hello\" -- TypeMismatch",
		Program:     Program(Val("r", If(Bool(true), Int(42), Str("hello")), nil)),
	},
	{
		Name:        "color-nonexhaustive",
		Description: "type Color = Red | Green | Blue; match c { Red => 1; Green => 2 } -- NonExhaustiveMatch",
		Program: Program(
			TypeDecl("Color", nil, Variant("Red"), Variant("Green"), Variant("Blue")),
			Func("classify", Simple("Int"),
				Match(Ident("c"),
					MatchCase(CtorPattern("Red"), Int(1)),
					MatchCase(CtorPattern("Green"), Int(2)),
				),
				FuncParam("c", Simple("Color"))),
		),
	},
	{
		Name:        "recursive-list",
		Description: "type List<T> = Nil | Cons(T, List<T>); val l = Cons(1, Cons(2, Nil))",
		Program: Program(
			TypeDecl("List", []string{"T"},
				Variant("Nil"),
				Variant("Cons", Simple("T"), Generic("List", Simple("T"))),
			),
			Val("l", Ctor("Cons", Int(1), Ctor("Cons", Int(2), Ctor("Nil"))), nil),
		),
	},
	{
		Name:        "duplicate-variant",
		Description: "type Bad = A | B | A -- DuplicateDefinition(A)",
		Program: Program(
			TypeDecl("Bad", nil, Variant("A"), Variant("B"), Variant("A")),
		),
	},
	{
		Name:        "duplicate-function",
		Description: "fn f(): Int => 1; fn f(): String => \"x\" -- DuplicateDefinition(f)",
		Program: Program(
			Func("f", Simple("Int"), Int(1)),
			Func("f", Simple("String"), Str("x")),
		),
	},
}

// Names returns every registered fixture's name, sorted by registration
// order (stable for the REPL's tab-completion list).
func Names() []string {
	names := make([]string, len(registry))
	for i, f := range registry {
		names[i] = f.Name
	}
	return names
}

// Lookup returns the fixture named name, if registered.
func Lookup(name string) (Fixture, bool) {
	for _, f := range registry {
		if f.Name == name {
			return f, true
		}
	}
	return Fixture{}, false
}

// All returns every registered fixture.
func All() []Fixture {
	out := make([]Fixture, len(registry))
	copy(out, registry)
	return out
}
