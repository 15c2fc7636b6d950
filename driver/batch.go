// SPDX-License-Identifier: MIT

package driver

import (
	"context"
	"fmt"

	"github.com/montanaflynn/stats"
	"go.uber.org/zap"

	"github.com/rijkvp/tsp/tsp"
)

// Builder constructs a fresh solver for one seed.
type Builder func(seed int64) (tsp.Algorithm, error)

// Summary aggregates the final lengths of a RunMany batch.
type Summary struct {
	Runs    int
	Best    Result
	Lengths []float64
	Mean    float64
	Median  float64
	P90     float64
	Min     float64
	Max     float64
	StdDev  float64
}

// Seeds derives n independent seeds from base.
func Seeds(base int64, n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = tsp.DeriveSeed(base, uint64(i))
	}

	return out
}

// RunMany runs one solver per seed, sequentially, and summarises the final
// lengths. Best is the shortest run (first wins on ties). The first build
// or run error aborts the batch.
func RunMany(ctx context.Context, build Builder, seeds []int64, opts ...Option) (Summary, error) {
	if len(seeds) == 0 {
		return Summary{}, ErrNoSeeds
	}
	o := gatherOptions(opts)

	sum := Summary{Lengths: make([]float64, 0, len(seeds))}
	for i, seed := range seeds {
		alg, err := build(seed)
		if err != nil {
			return Summary{}, fmt.Errorf("driver: build seed %d: %w", seed, err)
		}
		res, err := Run(ctx, alg, opts...)
		if err != nil {
			return Summary{}, fmt.Errorf("driver: run seed %d: %w", seed, err)
		}
		sum.Lengths = append(sum.Lengths, res.State.Length)
		if i == 0 || res.State.Length < sum.Best.State.Length {
			sum.Best = res
		}
	}
	sum.Runs = len(sum.Lengths)

	data := stats.Float64Data(sum.Lengths)
	// Inputs are non-empty, so the stats calls cannot fail.
	sum.Mean, _ = stats.Mean(data)
	sum.Median, _ = stats.Median(data)
	sum.P90, _ = stats.PercentileNearestRank(data, 90)
	sum.Min, _ = stats.Min(data)
	sum.Max, _ = stats.Max(data)
	sum.StdDev, _ = stats.StandardDeviation(data)

	o.logger.Info("batch finished",
		zap.Int("runs", sum.Runs),
		zap.Float64("best", sum.Best.State.Length),
		zap.Float64("mean", sum.Mean),
		zap.Float64("p90", sum.P90),
	)

	return sum, nil
}
