// SPDX-License-Identifier: MIT

// Package matrix holds the geometric input of a tour search: the cities and
// the precomputed table of pairwise Euclidean distances between them.
//
// What:
//
//   - City: an immutable (X, Y) coordinate pair.
//   - Distances: the symmetric n×n distance table, built once in O(n²)
//     from an ordered city list and never mutated afterwards.
//
// Invariants:
//
//   - d(i, j) == d(j, i) for every pair (the table is stored as a
//     gonum SymDense, so symmetry holds by construction).
//   - d(i, i) == 0.
//   - n ≥ 2; fewer cities is an input error reported before any solver
//     is constructed (ErrTooFewCities).
//
// Errors:
//
//   - ErrTooFewCities   fewer than two cities supplied
//   - ErrNaNInf         a coordinate is NaN or ±Inf
//   - ErrOutOfRange     city index outside [0, n) in a checked accessor
//
// Distances is read-only after construction and may be shared between
// goroutines; the solvers in package tsp each own one exclusively anyway.
package matrix
