// SPDX-License-Identifier: MIT

// Package tsp provides incremental, resumable solvers for the Euclidean
// Travelling Salesman Problem.
//
// Every solver implements Algorithm: the caller advances it one bounded
// unit of work at a time with Step and inspects a State snapshot between
// steps. Two strategies are available:
//
//   - BruteForce - enumerates every permutation of the cities in exact
//     lexicographic order, one permutation per Step, keeping the shortest.
//
//   - Complexity: O(n) per Step, n! Steps in total.
//
//   - Deterministic: identical city order ⇒ identical enumeration and result.
//
//   - Annealing - simulated annealing with swap / invert / shift neighbour
//     moves, Metropolis acceptance and a geometric cooling schedule applied
//     once per batch of candidates.
//
//   - Complexity: O(n) per Step; at most (MaxSteps+2)·(CandidatesPerBatch+1) Steps.
//
//   - Randomness comes only from the injected Rand (WithRand / WithSeed).
//
// Tours are permutations of city indices 0..n-1. Their length is cyclic: the
// edge from the last city back to the first is always included.
//
// Engines are single-owner values: Step must not be called concurrently on
// the same instance. Stopping the Step loop is all that is needed to cancel;
// no resources are held.
//
// OptimalLength (Held–Karp, O(n²·2ⁿ)) is provided as an exact reference for
// small instances (n ≤ 16).
package tsp
