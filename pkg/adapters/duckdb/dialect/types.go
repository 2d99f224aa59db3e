package dialect

import (
	"fmt"
	"strings"

	"github.com/quarryhq/quarry/pkg/core"
)

// nativeExact maps normalized DuckDB type names (and their aliases) to
// canonical tags. Parameterized and timezone-suffixed forms are handled by
// prefix in NativeToCanonical.
var nativeExact = map[string]core.TypeTag{
	"tinyint":  core.TagInteger,
	"int1":     core.TagInteger,
	"smallint": core.TagInteger,
	"int2":     core.TagInteger,
	"short":    core.TagInteger,
	"integer":  core.TagInteger,
	"int":      core.TagInteger,
	"int4":     core.TagInteger,
	"signed":   core.TagInteger,

	"bigint": core.TagBigInt,
	"int8":   core.TagBigInt,
	"long":   core.TagBigInt,

	"real":   core.TagFloat,
	"float4": core.TagFloat,
	"float":  core.TagFloat,
	"double": core.TagFloat,
	"float8": core.TagFloat,

	"boolean": core.TagBoolean,
	"bool":    core.TagBoolean,
	"logical": core.TagBoolean,

	"date": core.TagDate,
	"time": core.TagTime,

	"blob":      core.TagBlob,
	"bytea":     core.TagBlob,
	"binary":    core.TagBlob,
	"varbinary": core.TagBlob,

	"uuid": core.TagUUID,
}

// NativeToCanonical maps a DuckDB native type name to its canonical tag.
// Matching is case-insensitive and tolerates parameterized forms such as
// DECIMAL(10,2) and VARCHAR(255). An unrecognized name maps to TagString,
// never an error: unknown engine types still round-trip as text.
func NativeToCanonical(native string) core.TypeTag {
	name := strings.ToLower(strings.TrimSpace(native))

	if tag, ok := nativeExact[name]; ok {
		return tag
	}

	switch {
	case strings.HasPrefix(name, "decimal"), strings.HasPrefix(name, "numeric"):
		return core.TagDecimal
	// timestamp before the time prefix: "timestamptz" must not match "time".
	case strings.HasPrefix(name, "timestamp"), strings.HasPrefix(name, "datetime"):
		return core.TagDatetime
	case strings.HasPrefix(name, "time"):
		return core.TagTime
	}

	return core.TagString
}

// DDLOptions carries the optional modifiers for DDL type rendering.
type DDLOptions struct {
	// Size is the VARCHAR length; zero renders an unbounded VARCHAR.
	Size int
	// Precision and Scale apply to DECIMAL; both zero renders a bare
	// DECIMAL and DuckDB applies its default of DECIMAL(18,3).
	Precision int
	Scale     int
	// Double selects DOUBLE over REAL for float columns.
	Double bool
}

// CanonicalToDDL renders the DuckDB DDL type name for a canonical tag.
func CanonicalToDDL(tag core.TypeTag, opts DDLOptions) (string, error) {
	switch tag {
	case core.TagString:
		if opts.Size > 0 {
			return fmt.Sprintf("VARCHAR(%d)", opts.Size), nil
		}
		return "VARCHAR", nil
	case core.TagInteger:
		return "INTEGER", nil
	case core.TagBigInt:
		return "BIGINT", nil
	case core.TagFloat:
		if opts.Double {
			return "DOUBLE", nil
		}
		return "REAL", nil
	case core.TagDecimal:
		if opts.Precision > 0 {
			return fmt.Sprintf("DECIMAL(%d,%d)", opts.Precision, opts.Scale), nil
		}
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
		return "", core.Malformed("no DuckDB DDL type for tag %s", tag)
	}
}
