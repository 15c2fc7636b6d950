// SPDX-License-Identifier: MIT

package driver

import (
	"errors"

	"go.uber.org/zap"
)

// Sentinel errors.
var (
	// ErrNilAlgorithm is returned when a nil tsp.Algorithm is passed in.
	ErrNilAlgorithm = errors.New("driver: nil algorithm")

	// ErrNoSeeds is returned by RunMany when no seeds are given.
	ErrNoSeeds = errors.New("driver: no seeds")

	// ErrInvalidJob is returned when a job file fails to decode or validate.
	ErrInvalidJob = errors.New("driver: invalid job")
)

const (
	// DefaultCheckEvery is how many steps Run performs between context checks.
	DefaultCheckEvery = 1024

	// DefaultStepsPerTick is the initial Player speed.
	DefaultStepsPerTick = 10
)

const (
	panicNilLogger  = "driver: WithLogger: logger must be non-nil"
	panicCheckEvery = "driver: WithCheckEvery: n must be >= 1"
)

// Option configures Run, RunMany and Player.
type Option func(*options)

type options struct {
	logger     *zap.Logger
	metrics    *Metrics
	checkEvery int64
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.logger = l }
}

// WithMetrics attaches Prometheus collectors. A nil *Metrics disables them.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithCheckEvery sets how many steps Run performs between context checks.
// Panics when n < 1.
func WithCheckEvery(n int) Option {
	if n < 1 {
		panic(panicCheckEvery)
	}

	return func(o *options) { o.checkEvery = int64(n) }
}

func gatherOptions(opts []Option) options {
	o := options{logger: zap.NewNop(), checkEvery: DefaultCheckEvery}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
