package dialect

import (
	"encoding/hex"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/quarryhq/quarry/pkg/core"
)

// EncodeStandard renders a literal value using the standard formats shared
// by the supported analytical dialects. The switch is exhaustive over the
// core.Value union; encode_test.go verifies every variant is handled so a
// new variant cannot land without updating this function.
//
// Raw values are emitted verbatim with zero escaping; callers guarantee
// their content is already safe SQL. Every other textual value is quoted
// with embedded quotes doubled.
func EncodeStandard(v core.Value) (string, error) {
	switch val := v.(type) {
	case core.Null:
		return "NULL", nil
	case core.Bool:
		if val {
			return "TRUE", nil
		}
		return "FALSE", nil
	case core.Integer:
		return strconv.FormatInt(int64(val), 10), nil
	case core.BigInt:
		if val.Int == nil {
			return "", core.Malformed("bigint literal with nil value")
		}
		return val.Int.String(), nil
	case core.Float:
		f := float64(val)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", core.Malformed("non-finite float literal %v", f)
		}
		return strconv.FormatFloat(f, 'g', -1, 64), nil
	case core.Decimal:
		if val.Digits == "" {
			return "", core.Malformed("decimal literal with empty digits")
		}
		return val.Digits, nil
	case core.String:
		return quoteString(string(val)), nil
	case core.Blob:
		return "'" + hex.EncodeToString(val) + "'", nil
	case core.Date:
		return "'" + time.Time(val).Format("2006-01-02") + "'", nil
	case core.Timestamp:
		return "'" + time.Time(val).Format("2006-01-02 15:04:05") + "'", nil
	case core.Time:
		return "'" + time.Time(val).Format("15:04:05") + "'", nil
	case core.UUID:
		return "'" + uuid.UUID(val).String() + "'", nil
	case core.Raw:
		return string(val), nil
	case nil:
		return "", core.Malformed("nil value")
	default:
		return "", core.Malformed("unrecognized value type %T", v)
	}
}

// quoteString single-quotes s, doubling every embedded quote.
func quoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
