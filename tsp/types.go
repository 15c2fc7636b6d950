// SPDX-License-Identifier: MIT

package tsp

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Match with errors.Is; context is added with %w only at
// the outer boundary.
var (
	// ErrDimensionMismatch is returned when a tour is not a permutation of 0..n-1.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrInvalidConfig is returned when an AnnealingConfig fails validation.
	ErrInvalidConfig = errors.New("tsp: invalid annealing config")

	// ErrUnknownAlgorithm is returned for an unrecognised algorithm name or Kind.
	ErrUnknownAlgorithm = errors.New("tsp: unknown algorithm")

	// ErrTooManyCities is returned by OptimalLength when n exceeds MaxExactCities.
	ErrTooManyCities = errors.New("tsp: too many cities for exact solver")
)

// State is a snapshot of a solver.
//
// Path and Sample are fresh copies on every State call; mutating them never
// affects the solver.
type State struct {
	// Length is the cyclic length of Path.
	Length float64

	// Path is the reported tour: the best permutation found so far for
	// BruteForce, the current accepted tour for Annealing.
	Path []int

	// Sample is the tour most recently evaluated (accepted or not).
	Sample []int

	// Status is human-readable progress text.
	Status string
}

// Algorithm is the stepping contract shared by every solver.
type Algorithm interface {
	// Step performs exactly one bounded unit of work and reports whether the
	// solver has finished. Once Step returns true every further call returns
	// true without doing any work.
	Step() bool

	// State returns a snapshot of the solver.
	State() State

	// Kind identifies the strategy.
	Kind() Kind
}

// Kind selects a solving strategy.
type Kind int

const (
	// BruteForceKind enumerates all permutations.
	BruteForceKind Kind = iota + 1
	// AnnealingKind runs simulated annealing.
	AnnealingKind
)

// String returns the canonical name of k.
func (k Kind) String() string {
	switch k {
	case BruteForceKind:
		return "brute-force"
	case AnnealingKind:
		return "annealing"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps an algorithm name to a Kind. Accepted spellings are
// "bf", "brute-force", "an" and "annealing", case-insensitive.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bf", "brute-force", "bruteforce":
		return BruteForceKind, nil
	case "an", "annealing":
		return AnnealingKind, nil
	default:
		return 0, fmt.Errorf("%w: %q (choose annealing (an) or brute-force (bf))", ErrUnknownAlgorithm, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case BruteForceKind, AnnealingKind:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(k))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseKind.
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed

	return nil
}
