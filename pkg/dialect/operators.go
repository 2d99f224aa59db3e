package dialect

import "github.com/quarryhq/quarry/pkg/core"

// Standard operator renderers shared by dialects. Every renderer produces
// a fully parenthesized fragment so the result can be embedded in a larger
// expression without precedence ambiguity.

// RenderLike renders `(<lhs> LIKE <rhs>)` with no ESCAPE clause.
func RenderLike(c *Compiler, operands []core.Expr) (string, error) {
	lhs, rhs, err := c.BinaryOperands(core.OpLike, operands)
	if err != nil {
		return "", err
	}
	return "(" + lhs + " LIKE " + rhs + ")", nil
}

// RenderNotLike renders `(<lhs> NOT LIKE <rhs>)`.
func RenderNotLike(c *Compiler, operands []core.Expr) (string, error) {
	lhs, rhs, err := c.BinaryOperands(core.OpNotLike, operands)
	if err != nil {
		return "", err
	}
	return "(" + lhs + " NOT LIKE " + rhs + ")", nil
}

// RenderILikeViaUpper renders a case-insensitive match for engines without
// a native case-insensitive LIKE by uppercasing both sides.
func RenderILikeViaUpper(c *Compiler, operands []core.Expr) (string, error) {
	lhs, rhs, err := c.BinaryOperands(core.OpILike, operands)
	if err != nil {
		return "", err
	}
	return "(UPPER(" + lhs + ") LIKE UPPER(" + rhs + "))", nil
}

// RenderNotILikeViaUpper is the negated form of RenderILikeViaUpper.
func RenderNotILikeViaUpper(c *Compiler, operands []core.Expr) (string, error) {
	lhs, rhs, err := c.BinaryOperands(core.OpNotILike, operands)
	if err != nil {
		return "", err
	}
	return "(UPPER(" + lhs + ") NOT LIKE UPPER(" + rhs + "))", nil
}
