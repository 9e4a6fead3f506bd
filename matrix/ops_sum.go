// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise accumulation of N same-shaped matrices (Sum).
//
// Determinism:
//   - The accumulation order is part of the contract: for x, for y, for each
//     operand in argument order, acc = acc + m[x,y] starting from zero.
//     Floating-point results therefore match other ports bit for bit.

package matrix

import "fmt"

const opSum = "Sum"

// sumErrorf wraps err with the Sum op tag and the offending operand index.
func sumErrorf(idx int, err error) error {
	return fmt.Errorf("%s: operand %d: %w", opSum, idx, err)
}

// Sum returns a new matrix whose every cell is the sum of that cell across ms.
// MAIN DESCRIPTION:
//   - Allocate a zero matrix shaped like ms[0] and accumulate into it.
//
// Implementation:
//   - Stage 1: reject empty input (ErrEmptyInput).
//   - Stage 2: reject nil operands (ErrNilMatrix) and shapes different from
//     ms[0] (ErrDimensionMismatch) before any arithmetic.
//   - Stage 3: x→y→operand loops over the flat buffers.
//
// Behavior highlights:
//   - Inputs are never mutated; the result never aliases an input.
//   - A single operand yields a copy of it.
//
// Errors:
//   - ErrEmptyInput, ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(N*r*c), Space O(r*c).
func Sum[T Element](ms ...*Matrix[T]) (*Matrix[T], error) {
	if len(ms) == 0 {
		return nil, fmt.Errorf("%s: %w", opSum, ErrEmptyInput)
	}
	for i, m := range ms {
		if err := ValidateNotNil(m); err != nil {
			return nil, sumErrorf(i, err)
		}
		if err := ValidateSameShape[T](ms[0], m); err != nil {
			return nil, sumErrorf(i, err)
		}
	}

	r, c := ms[0].Shape()
	res, err := New[T](r, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSum, err)
	}

	var x, y, off int
	var acc T
	for x = 0; x < r; x++ {
		for y = 0; y < c; y++ {
			off = x*c + y
			acc = res.data[off]
			for _, m := range ms { // operand order is significant for floats
				acc = acc + m.data[off]
			}
			res.data[off] = acc
		}
	}

	return res, nil
}
