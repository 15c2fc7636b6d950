// SPDX-License-Identifier: MIT

package driver

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rijkvp/tsp/tsp"
)

// Result is the outcome of one headless run.
type Result struct {
	// RunID identifies the run in logs.
	RunID uuid.UUID
	// Kind is the solver strategy.
	Kind tsp.Kind
	// State is the snapshot taken after the last step.
	State tsp.State
	// Steps counts Step calls, the final one included.
	Steps int64
	// Elapsed is the wall-clock duration of the stepping loop.
	Elapsed time.Duration
	// Finished is false when the run was cut short by ctx.
	Finished bool
}

// Run steps alg until it reports done and returns its final snapshot.
//
// ctx is polled every WithCheckEvery steps (default DefaultCheckEvery); on
// cancellation Run returns the partial Result together with ctx.Err().
// The solver itself holds no resources, so nothing else needs releasing.
func Run(ctx context.Context, alg tsp.Algorithm, opts ...Option) (Result, error) {
	if alg == nil {
		return Result{}, ErrNilAlgorithm
	}
	o := gatherOptions(opts)

	res := Result{RunID: uuid.New(), Kind: alg.Kind()}
	log := o.logger.With(
		zap.String("run_id", res.RunID.String()),
		zap.Stringer("algorithm", res.Kind),
	)
	log.Debug("run started", zap.Int("cities", len(alg.State().Path)))

	var (
		start = time.Now()
		err   error
	)
	for {
		if res.Steps%o.checkEvery == 0 {
			if err = ctx.Err(); err != nil {
				break
			}
		}
		res.Steps++
		if alg.Step() {
			res.Finished = true
			break
		}
	}
	res.Elapsed = time.Since(start)
	res.State = alg.State()

	o.metrics.observeRun(res)
	if err != nil {
		log.Warn("run cancelled",
			zap.Error(err),
			zap.Int64("steps", res.Steps),
			zap.Float64("length", res.State.Length),
		)

		return res, err
	}
	log.Info("run finished",
		zap.Int64("steps", res.Steps),
		zap.Float64("length", res.State.Length),
		zap.Duration("elapsed", res.Elapsed),
		zap.String("status", res.State.Status),
	)

	return res, nil
}
