package duckdb

import (
	"errors"
	"strings"

	"github.com/quarryhq/quarry/pkg/core"
)

// sqlCoder is implemented by driver errors that carry a numeric engine
// code.
type sqlCoder interface {
	SQLCode() int
}

// classifyRule maps one engine error shape to a canonical kind. A rule
// matches on Code (when non-zero) or on a case-insensitive substring of
// the error message.
type classifyRule struct {
	Code    int
	Pattern string
	Kind    core.ErrorKind
}

// classifyRules are evaluated in order; the first match wins. Message
// patterns are ordered most-specific first so the bare "constraint"
// catch-all cannot shadow the dedicated kinds. DuckDB driver errors carry
// no stable numeric codes, so the shipped rules are all text rules; the
// code tier still runs first for errors that do expose one.
var classifyRules = []classifyRule{
	{Pattern: "not null constraint failed", Kind: core.KindNotNullViolation},
	{Pattern: "null value in column", Kind: core.KindNotNullViolation},
	{Pattern: "unique constraint failed", Kind: core.KindUniqueViolation},
	{Pattern: "duplicate key", Kind: core.KindUniqueViolation},
	{Pattern: "foreign key", Kind: core.KindForeignKeyViolation},
	{Pattern: "check constraint", Kind: core.KindCheckViolation},
	{Pattern: "constraint", Kind: core.KindConstraintViolation},
}

// Classify maps an engine error to its canonical kind. An error already
// carrying a classification passes through unchanged; everything else is
// wrapped so the original error stays in the chain.
func (a *Adapter) Classify(err error) *core.ClassifiedError {
	return classify(err, classifyRules)
}

func classify(err error, rules []classifyRule) *core.ClassifiedError {
	if err == nil {
		return nil
	}

	var classified *core.ClassifiedError
	if errors.As(err, &classified) {
		return classified
	}

	// Code tier: a numeric match wins over any message pattern.
	if coder, ok := err.(sqlCoder); ok {
		code := coder.SQLCode()
		for _, rule := range rules {
			if rule.Code != 0 && rule.Code == code {
				return &core.ClassifiedError{Kind: rule.Kind, Err: err}
			}
		}
	}

	msg := strings.ToLower(err.Error())
	for _, rule := range rules {
		if rule.Pattern != "" && strings.Contains(msg, rule.Pattern) {
			return &core.ClassifiedError{Kind: rule.Kind, Err: err}
		}
	}

	return &core.ClassifiedError{Kind: core.KindGenericDatabaseError, Err: err}
}
