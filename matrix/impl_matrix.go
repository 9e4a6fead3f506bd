// SPDX-License-Identifier: MIT

// Package matrix - Matrix storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula x*cols + y.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); String: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unsafe"
)

// ---------- error context tags ----------

const (
	ctxNew = "New" // ctor tag used in error wrappers
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// maxAllocBytes is the largest buffer New will request: 2^47-1 bytes on 64-bit
// platforms (below the runtime's heap address limit), math.MaxInt32 on 32-bit.
const maxAllocBytes = math.MaxInt >> (strconv.IntSize / 64 * 16)

// ---------- Formatting literals ----------

const (
	_fmtCellSep  = " "
	_fmtRowClose = "\n"
)

// matrixErrorf wraps an error with a uniform Matrix context and callsite indices.
// MAIN DESCRIPTION:
//   - Attach method context and coordinates to a sentinel error for diagnostics.
//
// Implementation:
//   - Stage 1: format "Matrix.<method>(x,y): %w".
//   - Stage 2: return wrapped error.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(method string, x, y int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, x, y, err)
}

// Matrix is a dense row-major grid of T values.
//   - r,c hold dimensions (rows = size_x, cols = size_y).
//   - data is a flat buffer of length r*c in row-major order (offset = x*c + y).
//
// A Matrix is not safe for concurrent mutation; callers that share one across
// goroutines must synchronize externally.
type Matrix[T Element] struct {
	r, c int // row and column counts (>= 0)
	data []T // contiguous row-major storage (len == r*c)
}

// New creates an r×c matrix with every cell set to the zero value of T.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: guard rows*cols against int overflow and its byte size against
//     maxAllocBytes; else ErrBadShape.
//   - Stage 3: allocate zero-filled buffer.
//
// Behavior highlights:
//   - Zero-sized shapes (0×N, N×0) are legal and allocate nothing.
//   - No panics on user errors; returns sentinel errors.
//
// Errors:
//   - ErrInvalidDimensions, ErrBadShape.
//
// Determinism:
//   - Always allocates the same layout for given (rows, cols).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T Element](rows, cols int) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(ctxNew, rows, cols, ErrInvalidDimensions)
	}
	if err := checkCapacity[T](rows, cols); err != nil {
		return nil, matrixErrorf(ctxNew, rows, cols, err)
	}

	return &Matrix[T]{
		r:    rows,
		c:    cols,
		data: make([]T, rows*cols), // make() zero-fills deterministically
	}, nil
}

// checkCapacity reports ErrBadShape when rows*cols elements of T cannot be
// addressed by a single slice or would exceed maxAllocBytes.
func checkCapacity[T Element](rows, cols int) error {
	if rows == 0 || cols == 0 {
		return nil
	}
	if cols > math.MaxInt/rows {
		return ErrBadShape
	}
	var zero T
	if size := int(unsafe.Sizeof(zero)); rows*cols > maxAllocBytes/size {
		return ErrBadShape
	}

	return nil
}

// Rows returns the row count (size_x). No side effects.
func (m *Matrix[T]) Rows() int { return m.r }

// Cols returns the column count (size_y). No side effects.
func (m *Matrix[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Matrix[T]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Both coordinates are checked independently so that an out-of-range y can
// never alias into the next row.
func (m *Matrix[T]) indexOf(x, y int) (int, error) {
	if x < 0 || x >= m.r {
		return 0, ErrOutOfRange
	}
	if y < 0 || y >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: x*c + y.
	return x*m.c + y, nil
}

// At returns the value at (x, y) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: load from flat buffer.
//
// Returns:
//   - (value, nil) on success; (zero, wrapped ErrOutOfRange) on invalid indices.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix[T]) At(x, y int) (T, error) {
	off, err := m.indexOf(x, y)
	if err != nil {
		var zero T
		return zero, matrixErrorf(ctxAt, x, y, err)
	}

	return m.data[off], nil
}

// Set stores v at (x, y) or returns ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element write; on failure storage is left untouched.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix[T]) Set(x, y int, v T) error {
	off, err := m.indexOf(x, y)
	if err != nil {
		return matrixErrorf(ctxSet, x, y, err)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Clone returns a deep copy with an independent buffer.
// Complexity: O(r*c) time and memory.
func (m *Matrix[T]) Clone() *Matrix[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Matrix[T]{r: m.r, c: m.c, data: cp}
}

// String renders one line per row; every element is printed with fmt's
// default format and followed by a single space, so each line ends in " \n".
// Intended for logs and debugging, not for parsing.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	var x, y, base int
	for x = 0; x < m.r; x++ { // iterate rows deterministically
		base = x * m.c
		for y = 0; y < m.c; y++ { // iterate cols
			fmt.Fprint(&b, m.data[base+y])
			b.WriteString(_fmtCellSep) // trailing separator after every cell
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (x,y) in row-major order and calls f(x,y,v).
// Stops early when f returns false.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Matrix[T]) Do(f func(x, y int, v T) bool) {
	var x, y, base int
	for x = 0; x < m.r; x++ {
		base = x * m.c
		for y = 0; y < m.c; y++ {
			if !f(x, y, m.data[base+y]) {
				return // early exit requested by caller
			}
		}
	}
}

// Fill replaces every element with f(x,y), visiting cells in row-major order.
// The visiting order is fixed so that stateful producers (e.g. a seeded
// generator) fill matrices reproducibly.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Matrix[T]) Fill(f func(x, y int) T) {
	var x, y, base int
	for x = 0; x < m.r; x++ {
		base = x * m.c
		for y = 0; y < m.c; y++ {
			m.data[base+y] = f(x, y)
		}
	}
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Grid[float64] = (*Matrix[float64])(nil)
	_ fmt.Stringer  = (*Matrix[int])(nil)
)
