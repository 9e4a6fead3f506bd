// SPDX-License-Identifier: MIT

// Package matrix - Transposed: a no-copy transposed adapter.
//
// Purpose:
//   - Expose a logical rows×cols grid whose storage is a cols×rows Matrix.
//   - Logical (x,y) is swapped to storage (y,x) before every access.
//
// Complexity quicksheet:
//   - NewTransposed: O(r*c); At/Set: O(1); String: O(r*c).

package matrix

import "fmt"

// Transposed owns a Matrix allocated with swapped dimensions and reindexes
// every access, giving O(1) transposed reads and writes without copying.
// It is the sole owner of its storage.
type Transposed[T Element] struct {
	inner *Matrix[T] // storage: Cols() rows × Rows() columns
}

// NewTransposed creates a logical rows×cols grid backed by a cols×rows Matrix.
// MAIN DESCRIPTION:
//   - Allocate the inner matrix with swapped dimensions.
//
// Errors:
//   - ErrInvalidDimensions, ErrBadShape (from New).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewTransposed[T Element](rows, cols int) (*Transposed[T], error) {
	inner, err := New[T](cols, rows) // dims flipped
	if err != nil {
		return nil, fmt.Errorf("NewTransposed(%d,%d): %w", rows, cols, err)
	}

	return &Transposed[T]{inner: inner}, nil
}

// Rows returns the logical row count (the inner column count).
func (t *Transposed[T]) Rows() int { return t.inner.c }

// Cols returns the logical column count (the inner row count).
func (t *Transposed[T]) Cols() int { return t.inner.r }

// Shape packs Rows() and Cols().
func (t *Transposed[T]) Shape() (rows, cols int) { return t.inner.c, t.inner.r }

// At reads logical (x,y), i.e. inner (y,x).
// Errors carry the inner coordinates, since that is where the check happens.
func (t *Transposed[T]) At(x, y int) (T, error) {
	return t.inner.At(y, x)
}

// Set writes logical (x,y), i.e. inner (y,x).
func (t *Transposed[T]) Set(x, y int, v T) error {
	return t.inner.Set(y, x, v)
}

// Inner returns the storage matrix. Writes through it are visible in t.
func (t *Transposed[T]) Inner() *Matrix[T] { return t.inner }

// Clone returns a deep copy with independent storage.
func (t *Transposed[T]) Clone() *Transposed[T] {
	return &Transposed[T]{inner: t.inner.Clone()}
}

// String prints the inner matrix, i.e. the STORAGE layout (Cols() lines of
// Rows() values), not the logical view. Benchmark output is compared against
// this exact layout, so it must not be "fixed" to print logical rows.
func (t *Transposed[T]) String() string {
	return t.inner.String()
}

var (
	_ Grid[float64] = (*Transposed[float64])(nil)
	_ fmt.Stringer  = (*Transposed[int])(nil)
)
