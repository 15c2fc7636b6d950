// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// City is a point in the plane. Values are copied everywhere, so a City
// handed to NewDistances can never be changed behind the table's back.
type City struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// Pt is shorthand for City{X: x, Y: y}.
func Pt(x, y float64) City { return City{X: x, Y: y} }

// Distance returns the Euclidean distance between a and b.
//
// Complexity: O(1).
func Distance(a, b City) float64 {
	return floats.Distance([]float64{a.X, a.Y}, []float64{b.X, b.Y}, 2)
}

// Distances is the symmetric table of pairwise Euclidean distances.
// The zero value is not usable; build one with NewDistances.
type Distances struct {
	cities []City
	sym    *mat.SymDense
}

// NewDistances validates cities and precomputes every pairwise distance.
//
// Contract:
//   - len(cities) ≥ 2, otherwise ErrTooFewCities.
//   - every coordinate is finite, otherwise ErrNaNInf (wrapped with the city index).
//
// Only the upper triangle is computed; SymDense mirrors it.
//
// Complexity: O(n²) time and space.
func NewDistances(cities []City) (*Distances, error) {
	if err := ValidateCities(cities); err != nil {
		return nil, err
	}

	var (
		n   = len(cities)
		own = make([]City, n)
		sym = mat.NewSymDense(n, nil)
		i   int
		j   int
	)
	copy(own, cities)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			sym.SetSym(i, j, Distance(own[i], own[j]))
		}
	}

	return &Distances{cities: own, sym: sym}, nil
}

// ValidateCities enforces the input contract shared by every solver.
//
// Complexity: O(n).
func ValidateCities(cities []City) error {
	if len(cities) < 2 {
		return fmt.Errorf("%w: got %d", ErrTooFewCities, len(cities))
	}
	for i, c := range cities {
		if math.IsNaN(c.X) || math.IsInf(c.X, 0) || math.IsNaN(c.Y) || math.IsInf(c.Y, 0) {
			return fmt.Errorf("city %d: %w", i, ErrNaNInf)
		}
	}

	return nil
}

// Len returns the number of cities n.
func (d *Distances) Len() int { return len(d.cities) }

// At returns the distance between cities i and j.
// It panics when either index is out of range; solvers only pass indices
// taken from a validated permutation.
//
// Complexity: O(1).
func (d *Distances) At(i, j int) float64 { return d.sym.At(i, j) }

// Lookup is the checked counterpart of At.
func (d *Distances) Lookup(i, j int) (float64, error) {
	n := d.Len()
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, ErrOutOfRange
	}

	return d.sym.At(i, j), nil
}

// City returns a copy of city i.
func (d *Distances) City(i int) City { return d.cities[i] }

// Cities returns a copy of the city list in input order.
func (d *Distances) Cities() []City {
	out := make([]City, len(d.cities))
	copy(out, d.cities)

	return out
}

// Row copies the distances from city i to every city into dst (allocated when
// dst is too short) and returns it.
//
// Complexity: O(n).
func (d *Distances) Row(i int, dst []float64) []float64 {
	n := d.Len()
	if cap(dst) < n {
		dst = make([]float64, n)
	}
	dst = dst[:n]
	var j int
	for j = 0; j < n; j++ {
		dst[j] = d.sym.At(i, j)
	}

	return dst
}
