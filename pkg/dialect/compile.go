package dialect

import (
	"strings"

	"github.com/quarryhq/quarry/pkg/core"
)

// Compiler renders expression trees to SQL text for one dialect. It is
// stateless beyond the dialect reference and safe for concurrent use.
type Compiler struct {
	d *Dialect
}

// NewCompiler creates a compiler for the given dialect.
func NewCompiler(d *Dialect) *Compiler {
	return &Compiler{d: d}
}

// Dialect returns the compiler's dialect.
func (c *Compiler) Dialect() *Dialect {
	return c.d
}

// Compile renders an expression to SQL text. ComplexExpr nodes dispatch
// through the dialect's operator table; tags the dialect does not own are
// delegated to its fallback renderer, and a missing fallback is a
// MalformedInputError rather than a silent default.
func (c *Compiler) Compile(e core.Expr) (string, error) {
	switch ex := e.(type) {
	case *core.Literal:
		return c.d.EncodeValue(ex.Value)
	case *core.ColumnRef:
		return c.d.RenderIdentifier(ex.Name), nil
	case *core.QualifiedRef:
		return c.d.RenderQualified(ex.Table, ex.Column), nil
	case *core.FuncCall:
		return c.compileFuncCall(ex)
	case *core.ComplexExpr:
		if r := c.d.OperatorRenderer(ex.Op); r != nil {
			return r(c, ex.Operands)
		}
		if fb := c.d.Fallback(); fb != nil {
			return fb.RenderOperator(c, ex.Op, ex.Operands)
		}
		return "", core.Malformed("operator %s has no renderer in dialect %s", ex.Op, c.d.Name)
	case nil:
		return "", core.Malformed("nil expression")
	default:
		return "", core.Malformed("unrecognized expression type %T", e)
	}
}

func (c *Compiler) compileFuncCall(f *core.FuncCall) (string, error) {
	args := make([]string, len(f.Args))
	for i, arg := range f.Args {
		text, err := c.Compile(arg)
		if err != nil {
			return "", err
		}
		args[i] = text
	}
	return f.Name + "(" + strings.Join(args, ", ") + ")", nil
}

// BinaryOperands compiles exactly two operands, the common case for the
// pattern-match operator family.
func (c *Compiler) BinaryOperands(op core.OpTag, operands []core.Expr) (lhs, rhs string, err error) {
	if len(operands) != 2 {
		return "", "", core.Malformed("operator %s expects 2 operands, got %d", op, len(operands))
	}
	if lhs, err = c.Compile(operands[0]); err != nil {
		return "", "", err
	}
	if rhs, err = c.Compile(operands[1]); err != nil {
		return "", "", err
	}
	return lhs, rhs, nil
}
