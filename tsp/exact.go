// SPDX-License-Identifier: MIT

package tsp

import (
	"math"

	"github.com/rijkvp/tsp/matrix"
)

// MaxExactCities bounds OptimalLength; the DP table has n·2ⁿ entries.
const MaxExactCities = 16

// OptimalLength returns the exact minimum cyclic tour length over d using
// the Held–Karp dynamic-programming algorithm. It is the reference the
// enumerating solver must agree with.
//
// dp[mask][j] = minimum cost to start at 0, visit exactly the cities in mask
// (bit 0 always set) and end at j. The tour is closed by returning to 0.
//
// Errors: ErrTooManyCities when n > MaxExactCities.
//
// Time complexity:   O(n² · 2ⁿ)
// Memory complexity: O(n · 2ⁿ)
func OptimalLength(d *matrix.Distances) (float64, error) {
	n := d.Len()
	if n > MaxExactCities {
		return 0, ErrTooManyCities
	}

	var (
		full = 1 << n
		dp   = make([]float64, full*n) // dp[mask*n+j]
		row  = make([][]float64, n)
		i    int
	)
	for i = range dp {
		dp[i] = math.Inf(1)
	}
	for i = 0; i < n; i++ {
		row[i] = d.Row(i, nil)
	}
	dp[1*n+0] = 0

	var (
		mask, prev int
		j, k       int
		cand       float64
	)
	for mask = 1; mask < full; mask += 2 { // odd masks contain city 0
		for j = 1; j < n; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			prev = mask ^ (1 << j)
			for k = 0; k < n; k++ {
				if prev&(1<<k) == 0 || math.IsInf(dp[prev*n+k], 1) {
					continue
				}
				cand = dp[prev*n+k] + row[k][j]
				if cand < dp[mask*n+j] {
					dp[mask*n+j] = cand
				}
			}
		}
	}

	best := math.Inf(1)
	for j = 1; j < n; j++ {
		cand = dp[(full-1)*n+j] + row[j][0]
		if cand < best {
			best = cand
		}
	}

	return round1e9(best), nil
}
