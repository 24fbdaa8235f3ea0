package infer

import (
	"github.com/taylorlang/semantic/internal/ast"
	"github.com/taylorlang/semantic/internal/diagnostic"
	"github.com/taylorlang/semantic/internal/types"
)

// synthBinaryOp implements the binary operator table.
func (c *Collector) synthBinaryOp(b *ast.BinaryOp) (types.Type, *types.ConstraintSet) {
	leftT, leftCS := c.Synthesize(b.Left)
	rightT, rightCS := c.Synthesize(b.Right)
	cs := leftCS.Union(rightCS)

	switch b.Op {
	case ast.OpAdd:
		if leftT.Equals(types.TString) || rightT.Equals(types.TString) {
			// The String-containing side coerces the other to String.
			return types.TString, cs
		}
		return c.numericBinOp(leftT, rightT, b, cs)

	case ast.OpSub, ast.OpMul, ast.OpDiv, ast.OpMod:
		return c.numericBinOp(leftT, rightT, b, cs)

	case ast.OpLt, ast.OpGt, ast.OpLe, ast.OpGe:
		cs = cs.Add(types.Subtype(leftT, rightT, srcLoc(b))).Add(types.Subtype(rightT, leftT, srcLoc(b)))
		return types.TBoolean, cs

	case ast.OpEq, ast.OpNe:
		cs = cs.Add(types.Equality(leftT, rightT, srcLoc(b)))
		return types.TBoolean, cs

	case ast.OpAnd, ast.OpOr:
		cs = cs.Add(types.Equality(leftT, types.TBoolean, srcLoc(b)))
		cs = cs.Add(types.Equality(rightT, types.TBoolean, srcLoc(b)))
		return types.TBoolean, cs

	default:
		c.Diags.Report(diagnostic.NewInvalidOperation(b.Op.String(), leftT, locOf(b)))
		return types.NewTypeVar(), cs
	}
}

func (c *Collector) numericBinOp(leftT, rightT types.Type, b *ast.BinaryOp, cs *types.ConstraintSet) (types.Type, *types.ConstraintSet) {
	wider, ok := types.Wider(leftT, rightT)
	if !ok {
		// Still emit constraints so the unifier surfaces the concrete
		// TypeMismatch (operands might be unresolved TypeVars at this
		// point, in which case solving proceeds and fails there instead).
		cs = cs.Add(types.Subtype(leftT, rightT, srcLoc(b))).Add(types.Subtype(rightT, leftT, srcLoc(b)))
		return leftT, cs
	}
	cs = cs.Add(types.Subtype(leftT, wider, srcLoc(b)))
	cs = cs.Add(types.Subtype(rightT, wider, srcLoc(b)))
	return wider, cs
}

// synthUnaryOp: `-` preserves numeric operand type; `!` requires and
// returns Boolean.
func (c *Collector) synthUnaryOp(u *ast.UnaryOp) (types.Type, *types.ConstraintSet) {
	operandT, cs := c.Synthesize(u.Operand)
	switch u.Op {
	case ast.OpNeg:
		return operandT, cs
	case ast.OpNot:
		cs = cs.Add(types.Equality(operandT, types.TBoolean, srcLoc(u)))
		return types.TBoolean, cs
	default:
		c.Diags.Report(diagnostic.NewInvalidOperation(u.Op.String(), operandT, locOf(u)))
		return types.NewTypeVar(), cs
	}
}
