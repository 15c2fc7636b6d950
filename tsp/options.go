// SPDX-License-Identifier: MIT

package tsp

// Default annealing parameters. They sit inside the ranges documented on
// AnnealingConfig and reproduce the classic 30° / ×0.95 schedule.
const (
	DefaultStartTemperature           = 30.0
	DefaultCoolingMultiplier          = 0.95
	DefaultCandidatesPerBatch         = 200
	DefaultMaxSteps                   = 200
	DefaultMaxStepsWithoutImprovement = 50
)

// Internal panic messages (no magic strings).
const (
	panicNilRand = "tsp: WithRand: rand must be non-nil"
)

// AnnealingConfig parameterises the simulated-annealing schedule.
//
// StartTemperature           – initial temperature; > 0 and finite. Typical: [30, 200].
// CoolingMultiplier          – per-batch factor in (0, 1). Typical: [0.95, 0.999].
// CandidatesPerBatch         – proposals evaluated per temperature; > 0. Typical: [200, 500].
// MaxSteps                   – cooling steps before stopping; > 0. Typical: [200, 10000].
// MaxStepsWithoutImprovement – stagnation limit in cooling steps; > 0. Typical: [50, 200].
type AnnealingConfig struct {
	StartTemperature           float64 `yaml:"start_temperature"`
	CoolingMultiplier          float64 `yaml:"cooling_multiplier"`
	CandidatesPerBatch         int     `yaml:"candidates_per_batch"`
	MaxSteps                   int     `yaml:"max_steps"`
	MaxStepsWithoutImprovement int     `yaml:"max_steps_without_improvement"`
}

// DefaultAnnealingConfig returns the default schedule.
func DefaultAnnealingConfig() AnnealingConfig {
	return AnnealingConfig{
		StartTemperature:           DefaultStartTemperature,
		CoolingMultiplier:          DefaultCoolingMultiplier,
		CandidatesPerBatch:         DefaultCandidatesPerBatch,
		MaxSteps:                   DefaultMaxSteps,
		MaxStepsWithoutImprovement: DefaultMaxStepsWithoutImprovement,
	}
}

// Option configures solver construction.
type Option func(*options)

// options holds the effective construction settings after applying Option
// setters. Unexported so callers can only go through the With* constructors.
type options struct {
	rng       Rand
	annealing AnnealingConfig
}

// WithRand injects the random source used by Annealing.
// Panics when r is nil (programmer error).
func WithRand(r Rand) Option {
	if r == nil {
		panic(panicNilRand)
	}

	return func(o *options) { o.rng = r }
}

// WithSeed is shorthand for WithRand(NewRand(seed)).
func WithSeed(seed int64) Option {
	r := NewRand(seed)

	return func(o *options) { o.rng = r }
}

// WithAnnealingConfig replaces the default annealing schedule. The config is
// validated when the solver is built.
func WithAnnealingConfig(cfg AnnealingConfig) Option {
	return func(o *options) { o.annealing = cfg }
}

// gatherOptions resolves opts over the defaults: seed-0 Rand, default schedule.
func gatherOptions(opts []Option) options {
	o := options{annealing: DefaultAnnealingConfig()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.rng == nil {
		o.rng = NewRand(0)
	}

	return o
}
