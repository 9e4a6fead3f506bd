// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Return plain sentinel errors (no coordinates) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil[T Element](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// isNil reports whether g is absent: a nil interface, a typed-nil *Matrix or
// *Transposed, or a Transposed without storage.
func isNil[T Element](g Grid[T]) bool {
	switch v := g.(type) {
	case nil:
		return true
	case *Matrix[T]:
		return v == nil
	case *Transposed[T]:
		return v == nil || v.inner == nil
	}

	return false
}

// ValidateSameShape ensures a and b have equal dimensions.
//
// Returns ErrNilMatrix if either operand is absent and ErrDimensionMismatch
// on any difference.
// Complexity: O(1).
func ValidateSameShape[T Element](a, b Grid[T]) error {
	if isNil(a) || isNil(b) {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape", ErrDimensionMismatch)
	}

	return nil
}

// Equal reports whether a and b have the same logical shape and identical
// elements. Comparison is exact (==), so NaN cells never compare equal.
// Two absent grids (nil or typed-nil) are equal; an absent and a present one
// are not.
// Complexity: O(r*c).
func Equal[T Element](a, b Grid[T]) bool {
	if na, nb := isNil(a), isNil(b); na || nb {
		return na && nb
	}
	if ValidateSameShape(a, b) != nil {
		return false
	}
	var x, y int
	for x = 0; x < a.Rows(); x++ {
		for y = 0; y < a.Cols(); y++ {
			va, _ := a.At(x, y) // safe: bounds ensured by loop
			vb, _ := b.At(x, y)
			if va != vb {
				return false
			}
		}
	}

	return true
}
