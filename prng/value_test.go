package prng_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/benchkit/prng"
	"github.com/stretchr/testify/require"
)

// TestValueProjections checks every integer projection of a Next value.
func TestValueProjections(t *testing.T) {
	v := prng.Default().Next()

	require.Equal(t, int64(22896), v.Raw())
	require.Equal(t, 22896, v.Int())
	require.Equal(t, int32(22896), v.Int32())
	require.Equal(t, uint32(22896), v.Uint32())
	require.Equal(t, uint64(22896), v.Uint64())
	require.Equal(t, uint(22896), v.Uint())
	require.Equal(t, "22896", v.String())
}

// TestValueProjectionsTruncate pins two's-complement casts for values outside 16 bits.
func TestValueProjectionsTruncate(t *testing.T) {
	g := prng.Default()

	neg, err := g.NextInRange(prng.Range{Start: -10, End: -5}) // -10 + 22896%5
	require.NoError(t, err)
	require.Equal(t, int64(-9), neg.Raw())
	require.Equal(t, int32(-9), neg.Int32())
	require.Equal(t, uint32(4294967287), neg.Uint32())       // 2^32 - 9
	require.Equal(t, uint64(math.MaxUint64-8), neg.Uint64()) // 2^64 - 9

	g.Reseed(prng.DefaultSeed)
	wide, err := g.NextInRange(prng.Range{Start: 1 << 40, End: 1<<40 + 7})
	require.NoError(t, err)
	require.Equal(t, int32(22896%7), wide.Int32())   // high bits dropped
	require.Equal(t, uint32(22896%7), wide.Uint32()) // same low 32 bits
}

// TestFloat64Invert covers 1/(raw+1) at both ends of the masked domain.
func TestFloat64Invert(t *testing.T) {
	require.Equal(t, 1.0/22897, prng.Default().Next().Float64Invert())

	// Find the raw values 0 and 65535 in the full cycle.
	g := prng.Default()
	var sawMin, sawMax bool
	for i := 0; i < prng.Period; i++ {
		v := g.Next()
		f := v.Float64Invert()
		require.False(t, math.IsInf(f, 0)) // denominator never zero
		switch v.Raw() {
		case 0:
			require.Equal(t, 1.0, f)
			sawMin = true
		case prng.Mask:
			require.Equal(t, 1.0/65536, f)
			sawMax = true
		}
	}
	require.True(t, sawMin && sawMax) // full period reaches both ends
}
