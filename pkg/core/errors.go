package core

import "fmt"

// ErrorKind is the semantic classification of a database failure.
type ErrorKind int

// Error kinds, most specific first. Classification rules are evaluated in
// this priority order; do not reorder.
const (
	KindGenericDatabaseError ErrorKind = iota
	KindNotNullViolation
	KindUniqueViolation
	KindForeignKeyViolation
	KindCheckViolation
	KindConstraintViolation
	KindConnectionError
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindNotNullViolation:
		return "not_null_violation"
	case KindUniqueViolation:
		return "unique_violation"
	case KindForeignKeyViolation:
		return "foreign_key_violation"
	case KindCheckViolation:
		return "check_violation"
	case KindConstraintViolation:
		return "constraint_violation"
	case KindConnectionError:
		return "connection_error"
	default:
		return "database_error"
	}
}

// MalformedInputError reports a value or expression this layer cannot
// render: an unrecognized tag, a non-finite float, a nil operand. It is
// surfaced immediately, never coerced to a default rendering.
type MalformedInputError struct {
	Msg string
}

func (e *MalformedInputError) Error() string {
	return "malformed input: " + e.Msg
}

// Malformed builds a MalformedInputError with a formatted message.
func Malformed(format string, args ...any) error {
	return &MalformedInputError{Msg: fmt.Sprintf(format, args...)}
}

// SchemaNotFoundError reports a describe call against a table absent from
// the given namespace. Returned instead of an ambiguous empty result.
type SchemaNotFoundError struct {
	Schema string
	Table  string
}

func (e *SchemaNotFoundError) Error() string {
	return fmt.Sprintf("table %s.%s not found", e.Schema, e.Table)
}

// ClassifiedError wraps a raw engine failure with its semantic kind.
// Only the error classifier produces these; the dialect core never raises
// one on its own initiative.
type ClassifiedError struct {
	Kind ErrorKind
	Err  error
}

func (e *ClassifiedError) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Err.Error()
}

func (e *ClassifiedError) Unwrap() error {
	return e.Err
}
