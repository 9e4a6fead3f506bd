// SPDX-License-Identifier: MIT

// Package prng - Generator: the reference LCG state machine.
//
// Complexity quicksheet:
//   - New/Default/Reseed/State: O(1); Next/NextInRange: O(1), no allocations.

package prng

import (
	"fmt"
	"math"
)

// LCG parameters. Changing any of these breaks parity with other ports.
const (
	Multiplier int64 = 1309
	Increment  int64 = 13849
	Mask       int64 = 65535

	// Period is the cycle length of the masked state (full period: Increment
	// is odd and Multiplier-1 is a multiple of 4).
	Period = 65536

	// DefaultSeed is the seed used by Default.
	DefaultSeed int64 = 74755
)

const (
	ctxNextInRange = "NextInRange"
	ctxIntn        = "Intn"
)

// Generator holds the single state register m.
//
// m is int64 so that m*Multiplier+Increment cannot overflow for any seed a
// benchmark would realistically use. For seeds large enough to wrap, the
// two's-complement wrap does not touch the low 16 bits, so the masked result
// is still exactly (seed*1309 + 13849) mod 65536.
//
// The zero value is a generator seeded with 0.
type Generator struct {
	m int64
}

// New returns a generator whose state is seed, verbatim.
func New(seed int64) *Generator {
	return &Generator{m: seed}
}

// Default returns a generator seeded with DefaultSeed.
func Default() *Generator {
	return New(DefaultSeed)
}

// Reseed discards the current state, as if g had just been created with seed.
func (g *Generator) Reseed(seed int64) {
	g.m = seed
}

// State returns the current register: the seed before the first Next, the
// last raw output afterwards.
func (g *Generator) State() int64 {
	return g.m
}

// Next advances the state and returns it wrapped in a Value.
// MAIN DESCRIPTION:
//   - m = ((m * 1309) + 13849) & 65535, in exactly that order.
//
// Behavior highlights:
//   - After the first call the state is always in [0, 65535], even for
//     negative seeds (the mask operates on the two's-complement bits).
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Generator) Next() Value {
	g.m = ((g.m * Multiplier) + Increment) & Mask

	return Value{raw: g.m}
}

// NextInRange draws the next raw value x and maps it into r as
// r.Start + x % (r.End - r.Start).
// MAIN DESCRIPTION:
//   - Reject degenerate ranges before touching the state.
//   - Advance exactly once on success.
//
// Behavior highlights:
//   - The modulo mapping is intentionally biased for widths that do not
//     divide 65536; other ports rely on the same bias.
//
// Errors:
//   - ErrDegenerateRange when r.End <= r.Start or the width overflows int64.
//     The generator is not advanced on error.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Generator) NextInRange(r Range) (Value, error) {
	width, ok := r.width()
	if !ok {
		return Value{}, fmt.Errorf("%s(%s): %w", ctxNextInRange, r, ErrDegenerateRange)
	}
	x := g.Next().raw

	return Value{raw: r.Start + x%width}, nil
}

// Intn returns NextInRange(Range{0, n}) as an int.
// Like math/rand.Intn it panics if n <= 0.
func (g *Generator) Intn(n int) int {
	v, err := g.NextInRange(Range{Start: 0, End: int64(n)})
	if err != nil {
		panic(fmt.Sprintf("prng: %s(%d): %v", ctxIntn, n, err))
	}

	return v.Int()
}

// Float64Invert is shorthand for g.Next().Float64Invert(); the result is in
// [1/65536, 1].
func (g *Generator) Float64Invert() float64 {
	return g.Next().Float64Invert()
}

// Range is the half-open interval [Start, End).
type Range struct {
	Start int64
	End   int64
}

// width returns End-Start and whether the range is usable.
func (r Range) width() (int64, bool) {
	if r.End <= r.Start {
		return 0, false
	}
	// End > Start, so the subtraction only overflows when Start is negative
	// and End is far enough above it.
	if r.Start < 0 && r.End > math.MaxInt64+r.Start {
		return 0, false
	}

	return r.End - r.Start, true
}

// Valid reports whether NextInRange would accept r.
func (r Range) Valid() bool {
	_, ok := r.width()
	return ok
}

// Len returns End-Start, or 0 for a degenerate range.
func (r Range) Len() int64 {
	w, _ := r.width()
	return w
}

// Contains reports whether v lies in [Start, End).
func (r Range) Contains(v int64) bool {
	return v >= r.Start && v < r.End
}

// String renders the range as "[start,end)".
func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}
