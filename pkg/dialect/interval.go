package dialect

import "github.com/quarryhq/quarry/pkg/core"

// IntervalUnit is one unit of date/interval arithmetic.
type IntervalUnit int

// Interval units in the fixed rendering order.
const (
	UnitYear IntervalUnit = iota
	UnitMonth
	UnitDay
	UnitHour
	UnitMinute
	UnitSecond
)

// String returns the SQL keyword for the unit.
func (u IntervalUnit) String() string {
	switch u {
	case UnitYear:
		return "YEAR"
	case UnitMonth:
		return "MONTH"
	case UnitDay:
		return "DAY"
	case UnitHour:
		return "HOUR"
	case UnitMinute:
		return "MINUTE"
	case UnitSecond:
		return "SECOND"
	default:
		return "unknown"
	}
}

// IntervalTerm is one `+ INTERVAL <amount> <UNIT>` term. Amount is usually
// an integer literal but may be any expression.
type IntervalTerm struct {
	Unit   IntervalUnit
	Amount core.Expr
}

// NewInterval builds interval terms from per-unit magnitudes, in fixed
// year-to-second order, skipping zero units.
func NewInterval(years, months, days, hours, minutes, seconds int) []IntervalTerm {
	parts := []struct {
		unit IntervalUnit
		n    int
	}{
		{UnitYear, years},
		{UnitMonth, months},
		{UnitDay, days},
		{UnitHour, hours},
		{UnitMinute, minutes},
		{UnitSecond, seconds},
	}

	var terms []IntervalTerm
	for _, p := range parts {
		if p.n == 0 {
			continue
		}
		terms = append(terms, IntervalTerm{
			Unit:   p.unit,
			Amount: &core.Literal{Value: core.Integer(p.n)},
		})
	}
	return terms
}

// DateAdd renders interval arithmetic: the base expression plus one
// `INTERVAL <amount> <UNIT>` term per entry, wrapped in an explicit cast.
// The default cast target is Timestamp because adding an interval to a
// Date-typed base promotes the result to a timestamp in the target engine;
// pass a non-zero cast tag to override.
//
// A negative magnitude is parenthesized (`INTERVAL (-5) HOUR`); the
// target grammar forbids a bare leading minus inside an interval literal.
// A non-literal magnitude is always parenthesized.
func (c *Compiler) DateAdd(base core.Expr, terms []IntervalTerm, cast core.TypeTag) (string, error) {
	expr, err := c.Compile(base)
	if err != nil {
		return "", err
	}

	for _, term := range terms {
		amount, err := c.compileIntervalAmount(term.Amount)
		if err != nil {
			return "", err
		}
		expr += " + INTERVAL " + amount + " " + term.Unit.String()
	}

	if cast == core.TagInvalid {
		cast = core.TagDatetime
	}
	typeName, err := castTypeName(cast)
	if err != nil {
		return "", err
	}
	return "CAST((" + expr + ") AS " + typeName + ")", nil
}

func (c *Compiler) compileIntervalAmount(amount core.Expr) (string, error) {
	if lit, ok := amount.(*core.Literal); ok {
		if n, ok := lit.Value.(core.Integer); ok {
			text, err := c.d.EncodeValue(lit.Value)
			if err != nil {
				return "", err
			}
			if n < 0 {
				return "(" + text + ")", nil
			}
			return text, nil
		}
	}

	text, err := c.Compile(amount)
	if err != nil {
		return "", err
	}
	return "(" + text + ")", nil
}

// castTypeName maps a canonical tag to the bare type name used in interval
// cast wrappers.
func castTypeName(tag core.TypeTag) (string, error) {
	switch tag {
	case core.TagString:
		return "VARCHAR", nil
	case core.TagInteger:
		return "INTEGER", nil
	case core.TagBigInt:
		return "BIGINT", nil
	case core.TagFloat:
		return "DOUBLE", nil
	case core.TagDecimal:
		return "DECIMAL", nil
	case core.TagBoolean:
		return "BOOLEAN", nil
	case core.TagDate:
		return "DATE", nil
	case core.TagDatetime:
		return "TIMESTAMP", nil
	case core.TagTime:
		return "TIME", nil
	case core.TagBlob:
		return "BLOB", nil
	case core.TagUUID:
		return "UUID", nil
	default:
		return "", core.Malformed("no cast type name for tag %s", tag)
	}
}
