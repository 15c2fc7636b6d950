// SPDX-License-Identifier: MIT

package tsp

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/rijkvp/tsp/matrix"
)

// maxFactorialN is the largest n whose n! fits in an int64.
const maxFactorialN = 20

// BruteForce enumerates every permutation of the cities in lexicographic
// order, one per Step, and keeps the shortest tour seen.
//
// States: enumerating → done (terminal). The identity permutation is
// evaluated at construction, so after k non-final Steps exactly k+1
// permutations have been visited; the Step that finds no successor
// permutation reports done, after n! visits in total.
//
// For n ≤ 2 every permutation describes the same cycle; the first Step
// reports done.
type BruteForce struct {
	dist       *matrix.Distances
	perm       []int
	best       []int
	bestLength float64
	visited    int64
	total      int64 // n!, or 0 when it overflows int64
	done       bool
}

var _ Algorithm = (*BruteForce)(nil)

// NewBruteForce validates cities and starts the enumeration at the identity
// permutation, which is also the initial best tour.
//
// Complexity: O(n²) (distance table).
func NewBruteForce(cities []matrix.City) (*BruteForce, error) {
	d, err := matrix.NewDistances(cities)
	if err != nil {
		return nil, err
	}

	return newBruteForce(d), nil
}

func newBruteForce(d *matrix.Distances) *BruteForce {
	n := d.Len()
	perm := IdentityTour(n)
	total := factorial(n)
	if n <= 2 {
		total = 1
	}

	return &BruteForce{
		dist:       d,
		perm:       perm,
		best:       CopyTour(perm),
		bestLength: TourLength(d, perm),
		visited:    1,
		total:      total,
	}
}

// Kind returns BruteForceKind.
func (b *BruteForce) Kind() Kind { return BruteForceKind }

// Step advances to the lexicographically next permutation and evaluates it.
// It returns true, leaving the best tour untouched, once no successor exists.
//
// Complexity: O(n).
func (b *BruteForce) Step() bool {
	if b.done {
		return true
	}
	if len(b.perm) <= 2 || !NextPermutation(b.perm) {
		b.done = true
		return true
	}
	b.visited++

	l := TourLength(b.dist, b.perm)
	if l < b.bestLength {
		b.bestLength = l
		copy(b.best, b.perm)
	}

	return false
}

// State reports the best tour, the permutation just evaluated and the
// visit counter.
func (b *BruteForce) State() State {
	return State{
		Length: b.bestLength,
		Path:   CopyTour(b.best),
		Sample: CopyTour(b.perm),
		Status: b.status(),
	}
}

// Visited returns how many permutations have been evaluated, identity included.
func (b *BruteForce) Visited() int64 { return b.visited }

// Total returns the number of permutations Step will visit: n! (1 for
// n ≤ 2), or 0 when n! does not fit in an int64.
func (b *BruteForce) Total() int64 { return b.total }

func (b *BruteForce) status() string {
	if b.total == 0 {
		return fmt.Sprintf("P: %s", humanize.Comma(b.visited))
	}

	return fmt.Sprintf("P: %s / %s", humanize.Comma(b.visited), humanize.Comma(b.total))
}

// NextPermutation rearranges perm into its lexicographic successor and
// reports true, or reports false and leaves perm untouched when perm is the
// last (descending) permutation.
//
// Algorithm: find the largest k with perm[k] < perm[k+1]; find the largest
// l > k with perm[l] > perm[k]; swap them; reverse perm[k+1:].
//
// Complexity: O(n).
func NextPermutation(perm []int) bool {
	n := len(perm)

	var k, l, i int
	k = -1
	for i = n - 2; i >= 0; i-- {
		if perm[i] < perm[i+1] {
			k = i
			break
		}
	}
	if k < 0 {
		return false
	}

	for l = n - 1; perm[l] <= perm[k]; l-- {
	}
	perm[k], perm[l] = perm[l], perm[k]
	reverseInPlace(perm, k+1, n-1)

	return true
}

// factorial returns n! or 0 if it overflows int64.
func factorial(n int) int64 {
	if n > maxFactorialN {
		return 0
	}
	f := int64(1)
	var i int
	for i = 2; i <= n; i++ {
		f *= int64(i)
	}

	return f
}
