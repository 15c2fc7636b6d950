// SPDX-License-Identifier: MIT

// Package tsp - tour utilities shared by both solvers.
//
// A tour is an open permutation of city indices 0..n-1; the closing edge
// tour[n-1]→tour[0] is implied and always counted.
// Provided helpers:
//   - TourLength: cyclic length with modulo wrap-around.
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - IdentityTour / CopyTour.
//   - RotateToStart: cyclic shift so the tour begins at a given city.
//   - NormalizeTour: start at city 0, direction fixed by the lower neighbour.
//   - EqualCyclic: equality under rotation and reversal.
//
// Design:
//   - Sentinel errors for caller input; panics only for solver-internal defects.
//   - O(n) time for every helper.
package tsp

import (
	"fmt"
	"math"

	"github.com/rijkvp/tsp/matrix"
)

// roundScale controls final length stabilization precision (1e-9).
// Rotations and reversals of the same cycle sum the same edges in a different
// order; rounding keeps their lengths bit-identical so they never count as
// an improvement over each other.
const roundScale = 1e9

// TourLength returns the cyclic length of tour under d.
// Indices are read modulo len(tour), so the wrap-around edge is included for
// every n ≥ 1 (for n = 2 the single edge is counted twice, there and back).
//
// It panics if a city index is out of range for d.
//
// Complexity: O(n).
func TourLength(d *matrix.Distances, tour []int) float64 {
	var (
		n   = len(tour)
		sum float64
		i   int
	)
	for i = 0; i < n; i++ {
		sum += d.At(tour[i], tour[(i+1)%n])
	}

	return round1e9(sum)
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// ValidatePermutation checks that perm is a permutation of {0..n-1} of length n.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// mustPermutation panics when perm is not a permutation of {0..n-1}.
// Solvers call it where a violation can only be a bug in this package.
func mustPermutation(perm []int, n int) {
	if err := ValidatePermutation(perm, n); err != nil {
		panic(fmt.Sprintf("tsp: corrupted tour %v: %v", perm, err))
	}
}

// IdentityTour returns [0, 1, …, n-1].
func IdentityTour(n int) []int {
	out := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		out[i] = i
	}

	return out
}

// CopyTour returns an independent copy of tour.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// RotateToStart returns a fresh copy of tour shifted so that out[0] == start.
//
// Complexity: O(n) time, O(n) space.
func RotateToStart(tour []int, start int) ([]int, error) {
	n := len(tour)
	if n == 0 {
		return nil, ErrDimensionMismatch
	}

	var (
		i     int
		pivot = -1
	)
	for i = 0; i < n; i++ {
		if tour[i] == start {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		return nil, ErrDimensionMismatch
	}

	out := make([]int, n)
	for i = 0; i < n; i++ {
		out[i] = tour[(pivot+i)%n]
	}

	return out, nil
}

// NormalizeTour returns the canonical form of a tour: rotated to begin at
// city 0 and, of the two directions around the cycle, the one whose second
// city has the lower index. Two tours describe the same cycle iff their
// normal forms are equal.
//
// Complexity: O(n) time, O(n) space.
func NormalizeTour(tour []int) ([]int, error) {
	if err := ValidatePermutation(tour, len(tour)); err != nil {
		return nil, err
	}
	out, err := RotateToStart(tour, 0)
	if err != nil {
		return nil, err
	}
	n := len(out)
	if n > 2 && out[1] > out[n-1] {
		reverseInPlace(out, 1, n-1)
	}

	return out, nil
}

// EqualCyclic reports whether a and b describe the same cycle, allowing
// rotation and reversal. Invalid tours are never equal.
//
// Complexity: O(n).
func EqualCyclic(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	na, err := NormalizeTour(a)
	if err != nil {
		return false
	}
	nb, err := NormalizeTour(b)
	if err != nil {
		return false
	}
	var i int
	for i = range na {
		if na[i] != nb[i] {
			return false
		}
	}

	return true
}

// reverseInPlace reverses the inclusive segment tour[i..k]. Bounds are the
// caller's responsibility.
func reverseInPlace(tour []int, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}
