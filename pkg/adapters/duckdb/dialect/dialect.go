// Package dialect provides the DuckDB SQL dialect definition.
// This package is lightweight and has no database driver dependencies,
// making it suitable for tools that need to render DuckDB SQL without
// the overhead of a database connection.
package dialect

import (
	"github.com/quarryhq/quarry/pkg/core"
	"github.com/quarryhq/quarry/pkg/dialect"
)

func init() {
	dialect.Register(DuckDB)
}

// DuckDB is the DuckDB dialect configuration.
//
// DuckDB has no case-insensitive LIKE variant that we rely on, so ILIKE
// is lowered to UPPER() on both sides. Regular expression matching uses
// regexp_matches(); the case-insensitive form passes the 'i' option.
var DuckDB = dialect.NewDialect("duckdb").
	Identifiers(`"`, `"`, `""`).
	DefaultSchema("main").
	WithReservedWords(reservedWords...).
	Operator(core.OpLike, dialect.RenderLike).
	Operator(core.OpNotLike, dialect.RenderNotLike).
	Operator(core.OpILike, dialect.RenderILikeViaUpper).
	Operator(core.OpNotILike, dialect.RenderNotILikeViaUpper).
	Operator(core.OpRegexp, renderRegexp).
	Operator(core.OpIRegexp, renderIRegexp).
	Build()

func renderRegexp(c *dialect.Compiler, operands []core.Expr) (string, error) {
	lhs, rhs, err := c.BinaryOperands(core.OpRegexp, operands)
	if err != nil {
		return "", err
	}
	return "(regexp_matches(" + lhs + ", " + rhs + "))", nil
}

func renderIRegexp(c *dialect.Compiler, operands []core.Expr) (string, error) {
	lhs, rhs, err := c.BinaryOperands(core.OpIRegexp, operands)
	if err != nil {
		return "", err
	}
	return "(regexp_matches(" + lhs + ", " + rhs + ", 'i'))", nil
}
