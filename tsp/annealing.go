// SPDX-License-Identifier: MIT

// Package tsp - simulated annealing solver.
//
// One Step is one of two things:
//   - a candidate evaluation (while the batch is not full): propose one
//     neighbour of the current tour, measure it, apply Metropolis acceptance;
//   - a cooling tick (once CandidatesPerBatch candidates were evaluated):
//     reset the batch, test the stop conditions, otherwise multiply the
//     temperature by CoolingMultiplier and advance the step counter.
//
// Acceptance:
//   - candidate ≤ current ⇒ accept, without consulting the random source;
//   - otherwise accept iff Float64() < exp((current − candidate) / T).
//
// Stagnation: the last-improvement marker moves only on a strict decrease of
// the current length, so random drift through accepted worse moves cannot
// hold off the stagnation stop.
package tsp

import (
	"fmt"
	"math"

	"github.com/rijkvp/tsp/matrix"
)

// Annealing is the simulated-annealing solver. Build it with NewAnnealing.
type Annealing struct {
	cfg  AnnealingConfig
	dist *matrix.Distances
	rng  Rand

	temperature     float64
	step            int
	candidate       int
	lastImprovement int

	path   []int // current accepted tour
	length float64
	sample []int // last proposal, kept even when rejected
	spare  []int // proposal buffer, swapped with path on acceptance

	lastMove Move
	accepted bool
	done     bool
}

var _ Algorithm = (*Annealing)(nil)

// NewAnnealing validates cities and the schedule, then starts from a
// uniformly random tour drawn from the configured Rand.
//
// Options: WithRand / WithSeed (default: seed 0 policy), WithAnnealingConfig
// (default: DefaultAnnealingConfig).
//
// Errors: matrix.ErrTooFewCities, matrix.ErrNaNInf, ErrInvalidConfig.
//
// Complexity: O(n²).
func NewAnnealing(cities []matrix.City, opts ...Option) (*Annealing, error) {
	o := gatherOptions(opts)
	if err := o.annealing.Validate(); err != nil {
		return nil, err
	}
	d, err := matrix.NewDistances(cities)
	if err != nil {
		return nil, err
	}

	return newAnnealing(d, o.annealing, o.rng), nil
}

func newAnnealing(d *matrix.Distances, cfg AnnealingConfig, r Rand) *Annealing {
	n := d.Len()
	path := randomInsertionTour(n, r)
	mustPermutation(path, n)

	return &Annealing{
		cfg:         cfg,
		dist:        d,
		rng:         r,
		temperature: cfg.StartTemperature,
		path:        path,
		length:      TourLength(d, path),
		sample:      CopyTour(path),
		spare:       make([]int, n),
	}
}

// Kind returns AnnealingKind.
func (a *Annealing) Kind() Kind { return AnnealingKind }

// Step performs one candidate evaluation or one cooling tick.
//
// Complexity: O(n).
func (a *Annealing) Step() bool {
	if a.done {
		return true
	}

	if a.candidate < a.cfg.CandidatesPerBatch {
		a.evaluateCandidate()
		a.candidate++
		return false
	}

	a.candidate = 0
	if a.step > a.cfg.MaxSteps || a.step-a.lastImprovement > a.cfg.MaxStepsWithoutImprovement {
		a.done = true
		return true
	}
	a.temperature *= a.cfg.CoolingMultiplier
	a.step++

	return false
}

// evaluateCandidate proposes one neighbour and applies the acceptance rule.
func (a *Annealing) evaluateCandidate() {
	copy(a.spare, a.path)
	a.lastMove = proposeMove(a.rng, a.spare)
	copy(a.sample, a.spare)

	candLength := TourLength(a.dist, a.spare)
	a.accepted = a.accept(candLength)
	if !a.accepted {
		return
	}
	if candLength < a.length {
		a.lastImprovement = a.step
	}
	a.path, a.spare = a.spare, a.path
	a.length = candLength
}

// accept implements the Metropolis rule. The random source is consulted only
// when the candidate is strictly longer than the current tour.
func (a *Annealing) accept(candLength float64) bool {
	if candLength <= a.length {
		return true
	}
	p := math.Exp((a.length - candLength) / a.temperature)

	return a.rng.Float64() < p
}

// State reports the current tour, the last proposal and the schedule position.
func (a *Annealing) State() State {
	return State{
		Length: a.length,
		Path:   CopyTour(a.path),
		Sample: CopyTour(a.sample),
		Status: fmt.Sprintf("S=%-3d C=%-3d  T=%.3f", a.step, a.candidate, a.temperature),
	}
}

// Temperature returns the current temperature.
func (a *Annealing) Temperature() float64 { return a.temperature }

// Steps returns the number of completed cooling ticks.
func (a *Annealing) Steps() int { return a.step }

// Candidate returns the number of candidates evaluated in the current batch.
func (a *Annealing) Candidate() int { return a.candidate }

// LastImprovement returns the step at which the current length last strictly decreased.
func (a *Annealing) LastImprovement() int { return a.lastImprovement }

// LastMove returns the most recent proposal kind and whether it was accepted.
func (a *Annealing) LastMove() (Move, bool) { return a.lastMove, a.accepted }

// Config returns the schedule in use.
func (a *Annealing) Config() AnnealingConfig { return a.cfg }
