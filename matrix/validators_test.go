package matrix_test

import (
	"testing"

	"github.com/katalvlaran/benchkit/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateNotNil covers nil and non-nil matrices.
func TestValidateNotNil(t *testing.T) {
	var nilM *matrix.Matrix[int]
	require.ErrorIs(t, matrix.ValidateNotNil(nilM), matrix.ErrNilMatrix) // nil rejected
	require.NoError(t, matrix.ValidateNotNil(mustNew[int](t, 1, 1)))     // non-nil accepted
}

// TestValidateSameShape mixes Matrix and Transposed operands.
func TestValidateSameShape(t *testing.T) {
	tm, err := matrix.NewTransposed[int](2, 3)
	require.NoError(t, err)

	// logical shapes agree
	require.NoError(t, matrix.ValidateSameShape[int](mustNew[int](t, 2, 3), tm))

	// storage is 3x2, logical view is 2x3
	require.ErrorIs(t, matrix.ValidateSameShape[int](tm.Inner(), tm), matrix.ErrDimensionMismatch)

	var nilM *matrix.Matrix[int]
	require.ErrorIs(t, matrix.ValidateSameShape[int](nilM, tm), matrix.ErrNilMatrix) // typed-nil operand
	require.ErrorIs(t, matrix.ValidateSameShape[int](tm, nil), matrix.ErrNilMatrix)  // nil interface
}

// TestEqual covers shape and value differences.
func TestEqual(t *testing.T) {
	a := mustFromRows(t, [][]int{{1, 2}, {3, 4}})
	b := a.Clone()
	require.True(t, matrix.Equal[int](a, b)) // identical copy

	require.NoError(t, b.Set(1, 1, 5))
	require.False(t, matrix.Equal[int](a, b)) // one cell differs

	require.False(t, matrix.Equal[int](a, mustNew[int](t, 2, 3))) // shape differs
	require.True(t, matrix.Equal[int](nil, nil))                  // both absent
	require.False(t, matrix.Equal[int](a, nil))                   // one absent

	var nilM *matrix.Matrix[int]
	var nilT *matrix.Transposed[int]
	require.False(t, matrix.Equal[int](a, nilM))   // typed-nil Matrix is absent
	require.False(t, matrix.Equal[int](nilT, a))   // typed-nil Transposed is absent
	require.True(t, matrix.Equal[int](nilM, nilT)) // both absent
	require.True(t, matrix.Equal[int](nil, nilM))  // nil interface and typed-nil

	require.False(t, matrix.Equal[int](a, &matrix.Transposed[int]{})) // view without storage
}
