// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures for Matrix/Transposed tests.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/benchkit/matrix"
	"github.com/stretchr/testify/require"
)

// mustNew ALLOCATES an r×c *Matrix[T] or fails the test.
func mustNew[T matrix.Element](tb testing.TB, r, c int) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.New[T](r, c)
	require.NoError(tb, err)

	return m
}

// mustFromRows builds a matrix from literal rows (all rows must be equal length).
func mustFromRows[T matrix.Element](tb testing.TB, rows [][]T) *matrix.Matrix[T] {
	tb.Helper()
	c := 0
	if len(rows) > 0 {
		c = len(rows[0])
	}
	m := mustNew[T](tb, len(rows), c)
	for x, row := range rows {
		require.Len(tb, row, c) // ragged fixtures are a test bug
		for y, v := range row {
			require.NoError(tb, m.Set(x, y, v))
		}
	}

	return m
}

// fillSeq writes 0,1,2,... in row-major order (deterministic fixture).
func fillSeq(m *matrix.Matrix[float64]) {
	n := 0
	m.Fill(func(_, _ int) float64 {
		v := float64(n)
		n++
		return v
	})
}
