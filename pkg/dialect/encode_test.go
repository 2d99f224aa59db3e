package dialect_test

import (
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/quarryhq/quarry/pkg/core"
	"github.com/quarryhq/quarry/pkg/dialect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeStandard(t *testing.T) {
	bigVal, ok := new(big.Int).SetString("92233720368547758080", 10)
	require.True(t, ok)

	tests := []struct {
		name  string
		value core.Value
		want  string
	}{
		{"null", core.Null{}, "NULL"},
		{"true", core.Bool(true), "TRUE"},
		{"false", core.Bool(false), "FALSE"},
		{"integer", core.Integer(42), "42"},
		{"negative integer", core.Integer(-7), "-7"},
		{"bigint beyond int64", core.BigInt{Int: bigVal}, "92233720368547758080"},
		{"float", core.Float(3.25), "3.25"},
		{"decimal", core.Decimal{Digits: "123.45", Precision: 5, Scale: 2}, "123.45"},
		{"plain string", core.String("hello"), "'hello'"},
		{"string with quote", core.String("O'Brien"), "'O''Brien'"},
		{"string with only quotes", core.String("''"), "''''''"},
		{"blob", core.Blob{0xde, 0xad, 0xbe, 0xef}, "'deadbeef'"},
		{"date", core.Date(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)), "'2024-03-15'"},
		{"timestamp", core.Timestamp(time.Date(2024, 3, 15, 9, 30, 5, 0, time.UTC)), "'2024-03-15 09:30:05'"},
		{"time of day", core.Time(time.Date(1970, 1, 1, 23, 59, 1, 0, time.UTC)), "'23:59:01'"},
		{"uuid", core.UUID(uuid.MustParse("f47ac10b-58cc-4372-a567-0e02b2c3d479")), "'f47ac10b-58cc-4372-a567-0e02b2c3d479'"},
		{"raw emitted verbatim", core.Raw("CURRENT_TIMESTAMP"), "CURRENT_TIMESTAMP"},
		{"raw with quotes untouched", core.Raw("substr(name, 1, 3) || '...'"), "substr(name, 1, 3) || '...'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dialect.EncodeStandard(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			// Pure function: a second call is byte-identical.
			again, err := dialect.EncodeStandard(tt.value)
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestEncodeStandardMalformed(t *testing.T) {
	tests := []struct {
		name  string
		value core.Value
	}{
		{"nil value", nil},
		{"nan", core.Float(math.NaN())},
		{"positive infinity", core.Float(math.Inf(1))},
		{"negative infinity", core.Float(math.Inf(-1))},
		{"nil bigint", core.BigInt{}},
		{"empty decimal", core.Decimal{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dialect.EncodeStandard(tt.value)
			require.Error(t, err)
			var me *core.MalformedInputError
			assert.ErrorAs(t, err, &me)
		})
	}
}

// TestEncodeStandardExhaustive pins the encoder to the full Value union:
// every variant must encode without a MalformedInputError for a well-formed
// sample. Adding a Value variant without updating EncodeStandard fails here.
func TestEncodeStandardExhaustive(t *testing.T) {
	samples := []core.Value{
		core.Null{},
		core.Bool(true),
		core.Integer(1),
		core.BigInt{Int: big.NewInt(1)},
		core.Float(1),
		core.Decimal{Digits: "1"},
		core.String("x"),
		core.Blob{0x01},
		core.Date(time.Now()),
		core.Timestamp(time.Now()),
		core.Time(time.Now()),
		core.UUID(uuid.New()),
		core.Raw("1"),
	}

	for _, v := range samples {
		_, err := dialect.EncodeStandard(v)
		assert.NoError(t, err, "variant %T must be handled", v)
	}
}

// TestEncodeStringProperty checks the quoting contract: output starts and
// ends with a quote and every embedded quote appears doubled.
func TestEncodeStringProperty(t *testing.T) {
	inputs := []string{"", "plain", "it's", "''", "a'b'c", "'; DROP TABLE users; --"}

	for _, in := range inputs {
		got, err := dialect.EncodeStandard(core.String(in))
		require.NoError(t, err)
		assert.True(t, len(got) >= 2, "quoted output too short: %q", got)
		assert.Equal(t, byte('\''), got[0])
		assert.Equal(t, byte('\''), got[len(got)-1])

		// Interior must contain no lone quote.
		interior := got[1 : len(got)-1]
		for i := 0; i < len(interior); i++ {
			if interior[i] == '\'' {
				require.True(t, i+1 < len(interior) && interior[i+1] == '\'',
					"lone quote in %q", got)
				i++
			}
		}
	}
}
