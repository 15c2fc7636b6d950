// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors return these sentinels and tests check them via errors.Is.
// Panics are reserved for programmer errors in unchecked accessors.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency. Wrap with
// fmt.Errorf("ctx: %w", ErrX) only at the outer boundary.
var (
	// ErrTooFewCities is returned when fewer than two cities are supplied.
	// A tour needs at least two distinct stops.
	ErrTooFewCities = errors.New("matrix: at least 2 cities are required")

	// ErrNaNInf signals a NaN or ±Inf coordinate.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrOutOfRange indicates that a city index is outside valid bounds.
	// Checked accessors (Lookup) return this; At panics instead.
	ErrOutOfRange = errors.New("matrix: index out of range")
)
