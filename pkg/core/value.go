package core

import (
	"math/big"
	"time"

	"github.com/google/uuid"
)

// Value is the closed set of literal values the dialect layer can render.
// The set is sealed with an unexported marker method so the literal encoder
// can switch exhaustively: adding a variant without updating the encoder is
// caught by the encoder's exhaustiveness test, not by silent fallback.
type Value interface {
	isValue()
}

// Null is the SQL NULL literal.
type Null struct{}

// Bool renders as the TRUE/FALSE keywords, never 1/0.
type Bool bool

// Integer is a 64-bit integer literal.
type Integer int64

// BigInt is an arbitrary-precision integer literal.
type BigInt struct {
	Int *big.Int
}

// Float is a double-precision literal. Non-finite values cannot be
// rendered and are rejected by the encoder.
type Float float64

// Decimal is a fixed-point literal. Digits holds the plain decimal text
// (e.g. "123.45"); Precision and Scale describe the declared type.
type Decimal struct {
	Digits    string
	Precision int
	Scale     int
}

// String is a text literal. The encoder quotes it and doubles embedded
// quotes; it is never emitted verbatim.
type String string

// Blob is a binary literal, rendered as a quoted hex digest.
type Blob []byte

// Date is a calendar date; only the year/month/day parts are rendered.
type Date time.Time

// Timestamp is a date plus wall-clock time, rendered to second precision.
type Timestamp time.Time

// Time is a wall-clock time of day; only the hour/minute/second parts are
// rendered.
type Time time.Time

// UUID renders as a quoted canonical UUID string.
type UUID uuid.UUID

// Raw is trusted, pre-validated SQL text emitted verbatim with zero
// escaping. It is the designated escape hatch for pre-rendered fragments;
// never wrap untrusted input in Raw.
type Raw string

func (Null) isValue()      {}
func (Bool) isValue()      {}
func (Integer) isValue()   {}
func (BigInt) isValue()    {}
func (Float) isValue()     {}
func (Decimal) isValue()   {}
func (String) isValue()    {}
func (Blob) isValue()      {}
func (Date) isValue()      {}
func (Timestamp) isValue() {}
func (Time) isValue()      {}
func (UUID) isValue()      {}
func (Raw) isValue()       {}
