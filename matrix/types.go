// SPDX-License-Identifier: MIT

// Package matrix: element constraint and the shared Grid interface.
// Errors live in errors.go; storage lives in impl_matrix.go and
// impl_transposed.go.

package matrix

// Element is the set of numeric types a Matrix can hold.
// Every member has a zero value (the default cell value) and a built-in +
// with the usual Go overflow/rounding semantics of that type.
type Element interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Grid is the read/write surface shared by Matrix and Transposed.
//
// Complexity notes: all methods are expected O(1).
type Grid[T Element] interface {
	// Rows returns the number of logical rows.
	Rows() int

	// Cols returns the number of logical columns.
	Cols() int

	// At retrieves the element at logical position (x, y).
	// Returns ErrOutOfRange if x<0, x>=Rows(), y<0 or y>=Cols().
	At(x, y int) (T, error)

	// Set assigns v at logical position (x, y).
	// Returns ErrOutOfRange if indices are invalid.
	Set(x, y int, v T) error
}
