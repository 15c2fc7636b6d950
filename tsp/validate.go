// SPDX-License-Identifier: MIT

// Package tsp - annealing configuration validation and loading.
//
// Design principles:
//   - Deterministic, side-effect free checks.
//   - Every failure wraps ErrInvalidConfig and names the offending field.
package tsp

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

// Validate checks every parameter of c.
//
// Complexity: O(1).
func (c AnnealingConfig) Validate() error {
	if math.IsNaN(c.StartTemperature) || math.IsInf(c.StartTemperature, 0) || c.StartTemperature <= 0 {
		return fmt.Errorf("%w: start_temperature must be finite and > 0 (got %v)", ErrInvalidConfig, c.StartTemperature)
	}
	// NaN fails both comparisons below, so it is rejected too.
	if !(c.CoolingMultiplier > 0 && c.CoolingMultiplier < 1) {
		return fmt.Errorf("%w: cooling_multiplier must be in (0, 1) (got %v)", ErrInvalidConfig, c.CoolingMultiplier)
	}
	if c.CandidatesPerBatch <= 0 {
		return fmt.Errorf("%w: candidates_per_batch must be > 0 (got %d)", ErrInvalidConfig, c.CandidatesPerBatch)
	}
	if c.MaxSteps <= 0 {
		return fmt.Errorf("%w: max_steps must be > 0 (got %d)", ErrInvalidConfig, c.MaxSteps)
	}
	if c.MaxStepsWithoutImprovement <= 0 {
		return fmt.Errorf("%w: max_steps_without_improvement must be > 0 (got %d)", ErrInvalidConfig, c.MaxStepsWithoutImprovement)
	}

	return nil
}

// LoadAnnealingConfig decodes a YAML document over DefaultAnnealingConfig and
// validates the result. Unknown keys are rejected; omitted keys keep their
// defaults. An empty document yields the defaults.
func LoadAnnealingConfig(r io.Reader) (AnnealingConfig, error) {
	cfg := DefaultAnnealingConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return AnnealingConfig{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return AnnealingConfig{}, err
	}

	return cfg, nil
}
