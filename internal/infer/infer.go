// Package infer implements the constraint collector: a bidirectional
// (synthesis + checking) walk of expressions and statements that produces
// a tentative type plus a ConstraintSet for the unifier to solve.
package infer

import (
	"github.com/taylorlang/semantic/internal/ast"
	"github.com/taylorlang/semantic/internal/diagnostic"
	"github.com/taylorlang/semantic/internal/tenv"
	"github.com/taylorlang/semantic/internal/types"
)

// Collector walks the AST collecting constraints. It is stateless with
// respect to constraints (every visit returns its own ConstraintSet) but
// carries the environment and diagnostic collector as shared context.
type Collector struct {
	Env   *tenv.Environment
	Diags *diagnostic.Collector
}

// New constructs a Collector over env, reporting diagnostics to diags.
func New(env *tenv.Environment, diags *diagnostic.Collector) *Collector {
	return &Collector{Env: env, Diags: diags}
}

func locOf(n ast.Node) *diagnostic.Location {
	pos := n.Position()
	return &diagnostic.Location{Line: pos.Line, Column: pos.Column, File: pos.File, Valid: true}
}

func srcLoc(n ast.Node) types.SourceLoc {
	pos := n.Position()
	return types.SourceLoc{Line: pos.Line, Column: pos.Column, File: pos.File, Valid: true}
}

// Synthesize visits expr in synthesis mode (no expected type) and returns
// its tentative type plus the constraints collected.
func (c *Collector) Synthesize(expr ast.Expr) (types.Type, *types.ConstraintSet) {
	switch e := expr.(type) {
	case *ast.Literal:
		return c.synthLiteral(e)
	case *ast.TupleLit:
		return c.synthTupleLit(e)
	case *ast.Identifier:
		return c.synthIdentifier(e)
	case *ast.BinaryOp:
		return c.synthBinaryOp(e)
	case *ast.UnaryOp:
		return c.synthUnaryOp(e)
	case *ast.IfExpression:
		return c.synthIf(e)
	case *ast.MatchExpression:
		return c.synthMatch(e)
	case *ast.BlockExpression:
		return c.synthBlock(e)
	case *ast.FunctionCall:
		return c.synthCall(e)
	case *ast.ConstructorCall:
		return c.synthConstructorCall(e)
	case *ast.LambdaExpression:
		return c.synthLambda(e)
	case *ast.TryExpression:
		return c.synthTry(e)
	default:
		c.Diags.Report(diagnostic.NewInvalidOperation("expression", exprKindStringer{expr}, locOf(expr)))
		return types.NewTypeVar(), types.EmptyConstraintSet()
	}
}

type exprKindStringer struct{ e ast.Expr }

func (k exprKindStringer) String() string { return k.e.String() }

// stringStringer adapts a plain string to fmt.Stringer, for diagnostics
// that have no AST node handy to stringify.
type stringStringer string

func (s stringStringer) String() string { return string(s) }

// Check visits expr in checking mode against expected, propagating the
// expected type into sub-nodes where it helps: literals, if-branches,
// lambda bodies, match arms.
func (c *Collector) Check(expr ast.Expr, expected types.Type) *types.ConstraintSet {
	switch e := expr.(type) {
	case *ast.Literal:
		return c.checkLiteral(e, expected)
	case *ast.IfExpression:
		return c.checkIf(e, expected)
	case *ast.LambdaExpression:
		return c.checkLambda(e, expected)
	case *ast.MatchExpression:
		return c.checkMatch(e, expected)
	case *ast.BlockExpression:
		return c.checkBlock(e, expected)
	case *ast.TryExpression:
		return c.checkTry(e, expected)
	default:
		actual, cs := c.Synthesize(expr)
		return cs.Add(types.Equality(actual, expected, srcLoc(expr)))
	}
}
