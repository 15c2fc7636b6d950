// SPDX-License-Identifier: MIT

// Package tsp - solver selection.
//
// New is the single entry point that maps a Kind to an engine. City input is
// validated once, before any engine state exists.
package tsp

import (
	"fmt"

	"github.com/rijkvp/tsp/matrix"
)

// New validates cities and constructs the solver selected by kind.
// Options that do not apply to the selected strategy are ignored
// (BruteForce draws no random numbers and has no schedule).
//
// Errors: ErrUnknownAlgorithm, matrix.ErrTooFewCities, matrix.ErrNaNInf,
// ErrInvalidConfig.
func New(kind Kind, cities []matrix.City, opts ...Option) (Algorithm, error) {
	switch kind {
	case BruteForceKind:
		return NewBruteForce(cities)
	case AnnealingKind:
		return NewAnnealing(cities, opts...)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, kind)
	}
}
