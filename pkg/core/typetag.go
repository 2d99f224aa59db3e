package core

// TypeTag is the canonical column type enumeration, independent of the
// target engine's native type spelling. The native-to-canonical direction
// is many-to-one; round-tripping preserves semantics, not text.
type TypeTag int

// Canonical type tags.
const (
	// TagInvalid is the zero value so an unset tag is distinguishable
	// from the string fallback.
	TagInvalid TypeTag = iota
	TagString
	TagInteger
	TagBigInt
	TagFloat
	TagDecimal
	TagBoolean
	TagDate
	TagDatetime
	TagTime
	TagBlob
	TagUUID
)

// String returns the canonical tag name.
func (t TypeTag) String() string {
	switch t {
	case TagString:
		return "string"
	case TagInteger:
		return "integer"
	case TagBigInt:
		return "bigint"
	case TagFloat:
		return "float"
	case TagDecimal:
		return "decimal"
	case TagBoolean:
		return "boolean"
	case TagDate:
		return "date"
	case TagDatetime:
		return "datetime"
	case TagTime:
		return "time"
	case TagBlob:
		return "blob"
	case TagUUID:
		return "uuid"
	default:
		return "invalid"
	}
}
