// Package checker implements the type-checker orchestrator: the
// top-level driver that walks a program's declarations in a fixed order
// (types, then function signatures, then bodies and value declarations),
// invoking the constraint collector and unifier per item and aggregating
// diagnostics across the program.
package checker

import (
	"github.com/taylorlang/semantic/internal/ast"
	"github.com/taylorlang/semantic/internal/diagnostic"
	"github.com/taylorlang/semantic/internal/tenv"
	"github.com/taylorlang/semantic/internal/typedast"
)

// Strategy selects between the two operating modes. Both walk the same
// declaration order and share the same unifier, so they agree by
// construction on numeric promotion — see DESIGN.md for how far the two
// are actually allowed to diverge in this implementation.
type Strategy int

const (
	// ConstraintBased is the default: the full collect-then-solve pipeline,
	// collecting one constraint set per item and solving it in a single
	// batch.
	ConstraintBased Strategy = iota
	// Algorithmic checks each block statement's constraints as soon as
	// they are collected rather than deferring every statement in an item
	// to one end-of-item solve. Faster for annotation-heavy code; limited
	// to the same inference power as ConstraintBased since both share the
	// infer.Collector and unify.Solve.
	Algorithmic
)

// Checker is the type-checker orchestrator. The zero value is ready to
// use with ConstraintBased strategy.
type Checker struct {
	Strategy Strategy
}

// New returns a Checker using the default (ConstraintBased) strategy.
func New() *Checker {
	return &Checker{Strategy: ConstraintBased}
}

// TypeCheck is the core's top-level entry point:
// typeCheck(program) -> Result<TypedProgram, Diagnostic>.
func (ck *Checker) TypeCheck(program *ast.Program) (*typedast.TypedProgram, *diagnostic.Diagnostic) {
	env := tenv.New()
	var itemDiags []*diagnostic.Diagnostic

	// Pass 1: type declarations, so forward references and self-recursion
	// work.
	for _, decl := range program.Decls {
		if td, ok := decl.(*ast.TypeDecl); ok {
			if diag := ck.declareTypeDecl(td, env); diag != nil {
				itemDiags = append(itemDiags, diag)
			}
		}
	}

	// Pass 2: function signatures, populated before any body is checked.
	// A declaration whose signature was not registered (e.g. a duplicate
	// name) has its body skipped in pass 3, so it is not checked against
	// another declaration's signature.
	unregistered := map[ast.Stmt]bool{}
	for _, decl := range program.Decls {
		if fd, ok := decl.(*ast.FunctionDecl); ok {
			if diag := ck.declareFunctionSignature(fd, env); diag != nil {
				itemDiags = append(itemDiags, diag)
				unregistered[decl] = true
			}
		}
	}

	// Pass 3: function bodies and top-level value declarations, in
	// source order.
	typed := &typedast.TypedProgram{}
	for _, decl := range program.Decls {
		if unregistered[decl] {
			continue
		}
		item, diag := ck.checkItem(decl, env)
		if diag != nil {
			itemDiags = append(itemDiags, diag)
		}
		if item != nil {
			typed.Items = append(typed.Items, item)
		}
	}

	switch len(itemDiags) {
	case 0:
		return typed, nil
	case 1:
		return nil, itemDiags[0]
	default:
		return nil, diagnostic.Wrap(itemDiags)
	}
}

func (ck *Checker) checkItem(decl ast.Stmt, env *tenv.Environment) (typedast.TypedItem, *diagnostic.Diagnostic) {
	switch d := decl.(type) {
	case *ast.TypeDecl:
		return &typedast.TypedTypeDecl{Decl: d}, nil
	case *ast.FunctionDecl:
		return ck.checkFunctionBody(d, env)
	case *ast.VarDecl:
		return ck.checkValueDecl(d, env)
	case *ast.ExprStmt:
		return ck.checkTopLevelExpr(d, env)
	default:
		return nil, nil
	}
}
