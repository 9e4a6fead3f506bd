// Package matrix offers a small, generic, dense 2D container.
//
// The matrix package provides:
//
//   - Matrix[T]: row-major storage over a flat slice (offset x*cols + y),
//     zero-initialized, with bounds-checked At/Set that return errors
//     instead of panicking.
//   - Transposed[T]: an owning adapter over a Matrix of swapped dimensions
//     that swaps coordinates on every access (no copying).
//   - Sum: element-wise accumulation over N same-shaped matrices with a
//     fixed accumulation order, so floating-point results are reproducible.
//
// T is any built-in integer or float kind (see Element); the zero value is
// the default cell and + is the accumulation operator.
//
// This is not a linear-algebra library: there is no multiplication,
// inversion or decomposition. Types are not safe for concurrent mutation.
//
// See the examples in this package for usage patterns.
package matrix
