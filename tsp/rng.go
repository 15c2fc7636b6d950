// SPDX-License-Identifier: MIT

// Package tsp - RNG utilities for the randomized solver.
//
// Goals:
//   - Determinism: same seed ⇒ identical runs; no time-based sources anywhere.
//   - Injection: the solver draws only from a Rand supplied at construction.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a Rand across solvers
//     that step on different goroutines; derive independent streams with DeriveSeed.
package tsp

import "math/rand"

// Rand is the random source consumed by Annealing. *math/rand.Rand satisfies it;
// tests may supply scripted implementations to force exact move sequences.
type Rand interface {
	// Intn returns a uniform int in [0, n). It panics if n <= 0.
	Intn(n int) int
	// Float64 returns a uniform float64 in [0, 1).
	Float64() float64
}

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed (SplitMix64 finalizer), so that multi-run drivers get decorrelated
// streams from one base seed.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// randomInsertionTour builds a uniformly random permutation of 0..n-1 by
// inserting each city, in turn, at a uniform position among the k+1 gaps
// around the k cities already placed.
//
// Complexity: O(n²) time (slice insertion), O(n) space. Called once per solver.
func randomInsertionTour(n int, r Rand) []int {
	path := make([]int, 0, n)

	var (
		i   int
		pos int
	)
	for i = 0; i < n; i++ {
		pos = r.Intn(len(path) + 1)
		path = append(path, 0)
		copy(path[pos+1:], path[pos:])
		path[pos] = i
	}

	return path
}
