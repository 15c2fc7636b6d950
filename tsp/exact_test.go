// SPDX-License-Identifier: MIT
package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rijkvp/tsp/matrix"
	"github.com/rijkvp/tsp/tsp"
)

func TestOptimalLength_Square(t *testing.T) {
	got, err := tsp.OptimalLength(mustDistances(t, square10()))
	require.NoError(t, err)
	require.Equal(t, 40.0, got)
}

func TestOptimalLength_TwoCities(t *testing.T) {
	got, err := tsp.OptimalLength(mustDistances(t, []matrix.City{matrix.Pt(0, 0), matrix.Pt(3, 4)}))
	require.NoError(t, err)
	require.Equal(t, 10.0, got)
}

func TestOptimalLength_CircleMatchesPerimeterPolygon(t *testing.T) {
	const n = 9
	d := mustDistances(t, circle(n, 100))
	got, err := tsp.OptimalLength(d)
	require.NoError(t, err)

	// The optimum visits the circle points in angular order; its length is
	// the regular polygon perimeter.
	th := 2 * math.Pi / n
	side := matrix.Distance(matrix.Pt(0, 100), matrix.Pt(100*math.Sin(th), 100*math.Cos(th)))
	require.InDelta(t, n*side, got, 1e-6)
}

func TestOptimalLength_TooMany(t *testing.T) {
	_, err := tsp.OptimalLength(mustDistances(t, circle(tsp.MaxExactCities+1, 10)))
	require.ErrorIs(t, err, tsp.ErrTooManyCities)
}
