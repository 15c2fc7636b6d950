// SPDX-License-Identifier: MIT
package driver_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rijkvp/tsp/driver"
	"github.com/rijkvp/tsp/tsp"
)

func countdownBuilder(seed int64) (tsp.Algorithm, error) {
	return newCountdown(tsp.AnnealingKind, int(seed)), nil
}

func TestRunMany_NoSeeds(t *testing.T) {
	_, err := driver.RunMany(context.Background(), countdownBuilder, nil)
	require.ErrorIs(t, err, driver.ErrNoSeeds)
}

func TestRunMany_Summary(t *testing.T) {
	sum, err := driver.RunMany(context.Background(), countdownBuilder, []int64{5, 2, 9, 4})
	require.NoError(t, err)

	require.Equal(t, 4, sum.Runs)
	require.Equal(t, []float64{5, 2, 9, 4}, sum.Lengths)
	require.Equal(t, 2.0, sum.Best.State.Length)
	require.Equal(t, 2.0, sum.Min)
	require.Equal(t, 9.0, sum.Max)
	require.InDelta(t, 5.0, sum.Mean, 1e-12)
	require.InDelta(t, 4.5, sum.Median, 1e-12)
	require.Equal(t, 9.0, sum.P90)
	require.Greater(t, sum.StdDev, 0.0)
}

func TestRunMany_SingleSeed(t *testing.T) {
	sum, err := driver.RunMany(context.Background(), countdownBuilder, []int64{3})
	require.NoError(t, err)
	require.Equal(t, 3.0, sum.P90)
	require.Equal(t, 3.0, sum.Median)
	require.Zero(t, sum.StdDev)
}

func TestRunMany_BuildError(t *testing.T) {
	boom := errors.New("boom")
	_, err := driver.RunMany(context.Background(), func(int64) (tsp.Algorithm, error) {
		return nil, boom
	}, []int64{1})
	require.ErrorIs(t, err, boom)
}

func TestRunMany_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := driver.RunMany(ctx, countdownBuilder, []int64{1, 2})
	require.ErrorIs(t, err, context.Canceled)
}

func TestSeeds(t *testing.T) {
	a := driver.Seeds(7, 5)
	require.Len(t, a, 5)
	require.Equal(t, a, driver.Seeds(7, 5))

	seen := make(map[int64]bool, len(a))
	for _, s := range a {
		require.False(t, seen[s])
		seen[s] = true
	}
	require.NotEqual(t, a, driver.Seeds(8, 5))
}

func TestRunMany_Annealing(t *testing.T) {
	cities := square10()
	build := func(seed int64) (tsp.Algorithm, error) {
		return tsp.New(tsp.AnnealingKind, cities, tsp.WithSeed(seed))
	}
	sum, err := driver.RunMany(context.Background(), build, driver.Seeds(1, 4))
	require.NoError(t, err)
	require.LessOrEqual(t, sum.Best.State.Length, sum.Mean+1e-9)
	require.InDelta(t, 40.0, sum.Best.State.Length, 1e-9)
}
