// SPDX-License-Identifier: MIT

package prng

import "strconv"

// Value is one generated number. It is immutable and carries no identity:
// it exists only to be projected into the numeric type the caller needs.
//
// Integer projections are plain Go conversions of the raw int64 (truncating
// or widening with two's-complement semantics). Raw values produced by Next
// are in [0, 65535], so every projection is lossless for them.
type Value struct {
	raw int64
}

// Raw returns the underlying int64.
func (v Value) Raw() int64 { return v.raw }

// Int returns the value as a platform int.
func (v Value) Int() int { return int(v.raw) }

// Int32 returns the value truncated to 32 bits.
func (v Value) Int32() int32 { return int32(v.raw) }

// Uint32 returns the value truncated to 32 bits, unsigned.
func (v Value) Uint32() uint32 { return uint32(v.raw) }

// Uint64 returns the value reinterpreted as unsigned 64 bits.
func (v Value) Uint64() uint64 { return uint64(v.raw) }

// Uint returns the value as a platform-size unsigned integer.
func (v Value) Uint() uint { return uint(v.raw) }

// Float64Invert returns 1 / (raw + 1).
//
// For values from Next the denominator is in [1, 65536] and never zero.
// Values from NextInRange with a negative Start can reach -1, giving ±Inf.
func (v Value) Float64Invert() float64 {
	return 1.0 / float64(v.raw+1)
}

// String formats the raw value in base 10.
func (v Value) String() string {
	return strconv.FormatInt(v.raw, 10)
}
