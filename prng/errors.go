// SPDX-License-Identifier: MIT
// Package prng: sentinel error set.

package prng

import "errors"

// ErrDegenerateRange is returned when a Range is empty or inverted
// (End <= Start), or when its width does not fit in an int64.
// Callers match it via errors.Is.
var ErrDegenerateRange = errors.New("prng: empty or inverted range")
