// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Public methods return these sentinels (wrapped with call-site
// context) and tests check them via errors.Is. No public method panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Call sites wrap with fmt.Errorf("Matrix.At(%d,%d): %w", ...) so callers can
// still use errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// empty input -> nil operand -> shape/dimension mismatch -> index range.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrBadShape is returned when rows*cols cannot be addressed by a single
	// backing slice (integer overflow of the element count).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates operands of different shapes, e.g. Sum over
	// matrices whose Rows/Cols differ from the first operand.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrEmptyInput indicates that an aggregate (Sum) received no operands.
	ErrEmptyInput = errors.New("matrix: empty input")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// ErrIndexOutOfBounds names the same condition as ErrOutOfRange.
// Kept so errors.Is(err, ErrIndexOutOfBounds) reads naturally at call sites.
var ErrIndexOutOfBounds = ErrOutOfRange

// ErrShapeMismatch names the same condition as ErrDimensionMismatch.
var ErrShapeMismatch = ErrDimensionMismatch
