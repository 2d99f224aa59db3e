package core

// Expr is the abstract expression tree handed to the dialect compiler.
// Like Value, the set is sealed: the compiler owns an exhaustive switch
// and everything else is a MalformedInputError.
type Expr interface {
	isExpr()
}

// Literal wraps a Value as an expression leaf.
type Literal struct {
	Value Value
}

// ColumnRef is an unqualified column reference.
type ColumnRef struct {
	Name string
}

// QualifiedRef is a table-qualified column reference, rendered with dot
// notation regardless of how the caller represents compound names.
type QualifiedRef struct {
	Table  string
	Column string
}

// FuncCall is a function invocation with positional arguments.
type FuncCall struct {
	Name string
	Args []Expr
}

// ComplexExpr is a multi-operand expression identified by an operator tag.
// Tags the dialect does not own are delegated to its fallback renderer.
type ComplexExpr struct {
	Op       OpTag
	Operands []Expr
}

func (*Literal) isExpr()      {}
func (*ColumnRef) isExpr()    {}
func (*QualifiedRef) isExpr() {}
func (*FuncCall) isExpr()     {}
func (*ComplexExpr) isExpr()  {}

// OpTag identifies a special operator handled by the dialect's rendering
// table.
type OpTag int

// Operator tags owned by the dialect core.
const (
	OpLike OpTag = iota
	OpNotLike
	OpILike
	OpNotILike
	OpRegexp
	OpIRegexp
)

// String returns the operator tag name for diagnostics.
func (op OpTag) String() string {
	switch op {
	case OpLike:
		return "LIKE"
	case OpNotLike:
		return "NOT LIKE"
	case OpILike:
		return "ILIKE"
	case OpNotILike:
		return "NOT ILIKE"
	case OpRegexp:
		return "REGEXP"
	case OpIRegexp:
		return "IREGEXP"
	default:
		return "unknown"
	}
}
