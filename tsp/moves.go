// SPDX-License-Identifier: MIT

package tsp

import "fmt"

// Move identifies a neighbour move of the annealing solver.
type Move int

const (
	// MoveNone means no proposal has been made yet.
	MoveNone Move = iota
	// MoveSwap exchanges the cities at two distinct positions.
	MoveSwap
	// MoveInvert reverses the closed range between two distinct positions.
	MoveInvert
	// MoveShiftLeft rotates the whole tour one position to the left.
	MoveShiftLeft
	// MoveShiftRight rotates the whole tour one position to the right.
	MoveShiftRight
)

// String returns a short lowercase name.
func (m Move) String() string {
	switch m {
	case MoveNone:
		return "none"
	case MoveSwap:
		return "swap"
	case MoveInvert:
		return "invert"
	case MoveShiftLeft:
		return "shift-left"
	case MoveShiftRight:
		return "shift-right"
	default:
		return fmt.Sprintf("Move(%d)", int(m))
	}
}

// Swap exchanges tour[x] and tour[y] in place. Applying it twice with the
// same positions restores the tour.
// Panics if x == y or either position is out of range.
func Swap(tour []int, x, y int) {
	checkPositions(len(tour), x, y)
	tour[x], tour[y] = tour[y], tour[x]
}

// Invert reverses the closed range tour[min(x,y) .. max(x,y)] in place.
// Applying it twice with the same positions restores the tour.
// Panics if x == y or either position is out of range.
func Invert(tour []int, x, y int) {
	checkPositions(len(tour), x, y)
	if x > y {
		x, y = y, x
	}
	reverseInPlace(tour, x, y)
}

// ShiftLeft rotates tour one position to the left in place:
// [a b c d] → [b c d a].
func ShiftLeft(tour []int) {
	n := len(tour)
	if n < 2 {
		return
	}
	first := tour[0]
	copy(tour, tour[1:])
	tour[n-1] = first
}

// ShiftRight rotates tour one position to the right in place:
// [a b c d] → [d a b c].
func ShiftRight(tour []int) {
	n := len(tour)
	if n < 2 {
		return
	}
	last := tour[n-1]
	copy(tour[1:], tour[:n-1])
	tour[0] = last
}

// distinctPositions draws two distinct positions in [0, n), redrawing the
// second until it differs from the first. n must be ≥ 2.
func distinctPositions(r Rand, n int) (int, int) {
	if n < 2 {
		panic(fmt.Sprintf("tsp: distinct positions need n >= 2, got %d", n))
	}
	x := r.Intn(n)
	y := x
	for y == x {
		y = r.Intn(n)
	}

	return x, y
}

// proposeMove applies one uniformly chosen neighbour move to tour in place
// and reports which one.
func proposeMove(r Rand, tour []int) Move {
	switch r.Intn(3) {
	case 0:
		x, y := distinctPositions(r, len(tour))
		Swap(tour, x, y)
		return MoveSwap
	case 1:
		x, y := distinctPositions(r, len(tour))
		Invert(tour, x, y)
		return MoveInvert
	default:
		if r.Intn(2) == 0 {
			ShiftLeft(tour)
			return MoveShiftLeft
		}
		ShiftRight(tour)
		return MoveShiftRight
	}
}

func checkPositions(n, x, y int) {
	if x < 0 || x >= n || y < 0 || y >= n {
		panic(fmt.Sprintf("tsp: move position out of range: %d, %d (n=%d)", x, y, n))
	}
	if x == y {
		panic(fmt.Sprintf("tsp: move positions must differ: %d", x))
	}
}
