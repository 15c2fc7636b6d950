// SPDX-License-Identifier: MIT
// Package tsp_test provides lightweight helpers shared across *_test.go files:
// deterministic city layouts and a scripted random source.
package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rijkvp/tsp/matrix"
)

const (
	// seedDet is a deterministic seed for RNG-based components.
	seedDet = int64(42)

	// epsLen is the tolerance for comparing lengths summed in different orders.
	epsLen = 1e-9
)

// square10 is the unit square scaled by 10; its optimal tour has length 40.
func square10() []matrix.City {
	return []matrix.City{matrix.Pt(0, 0), matrix.Pt(10, 0), matrix.Pt(10, 10), matrix.Pt(0, 10)}
}

// circle places n cities on a circle of radius r and shuffles their order
// with a fixed seed, so the optimal tour is the (unknown) circular order.
func circle(n int, r float64) []matrix.City {
	out := make([]matrix.City, n)
	var (
		i  int
		th float64
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		out[i] = matrix.Pt(r*math.Sin(th), r*math.Cos(th))
	}
	rng := rand.New(rand.NewSource(7))
	rng.Shuffle(n, func(a, b int) { out[a], out[b] = out[b], out[a] })

	return out
}

// mustDistances builds a distance table or fails the test.
func mustDistances(t *testing.T, cities []matrix.City) *matrix.Distances {
	t.Helper()
	d, err := matrix.NewDistances(cities)
	require.NoError(t, err)

	return d
}

// matrixFor is the non-fatal variant of mustDistances for benchmarks.
func matrixFor(cities []matrix.City) (*matrix.Distances, error) {
	return matrix.NewDistances(cities)
}

// scriptedRand replays fixed draws and fails the test on any unexpected draw.
// It lets tests pin exact move sequences and acceptance outcomes.
type scriptedRand struct {
	t      *testing.T
	ints   []int
	floats []float64
}

func (s *scriptedRand) Intn(n int) int {
	s.t.Helper()
	require.NotEmpty(s.t, s.ints, "unexpected Intn(%d)", n)
	v := s.ints[0]
	s.ints = s.ints[1:]
	require.True(s.t, v >= 0 && v < n, "scripted Intn value %d outside [0,%d)", v, n)

	return v
}

func (s *scriptedRand) Float64() float64 {
	s.t.Helper()
	require.NotEmpty(s.t, s.floats, "unexpected Float64()")
	v := s.floats[0]
	s.floats = s.floats[1:]

	return v
}

// exhausted asserts that every scripted draw was consumed.
func (s *scriptedRand) exhausted() {
	s.t.Helper()
	require.Empty(s.t, s.ints, "unused Intn draws")
	require.Empty(s.t, s.floats, "unused Float64 draws")
}

// identityScript returns the insertion draws that make the initial tour of
// an n-city Annealing the identity permutation (always insert at the end).
func identityScript(n int) []int {
	out := make([]int, n)
	var i int
	for i = range out {
		out[i] = i
	}

	return out
}
