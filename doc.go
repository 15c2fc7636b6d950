// Package tsp is a stepwise engine for the Euclidean travelling salesman
// problem: every solver advances one bounded unit of work per Step, so a
// redraw loop can show progress while it searches.
//
// 🚀 What is in here?
//
//	• Distance tables: validated city sets and a symmetric Euclidean matrix
//	• Brute force: lexicographic enumeration of every permutation
//	• Simulated annealing: swap / invert / shift moves, Metropolis acceptance
//	• Held–Karp: exact optimum for small n, used as a test oracle
//	• Drivers: headless runs, paced interactive playback, seed batches
//
// ✨ Why step-by-step?
//
//   - Responsive – a front end decides how many steps fit in one frame
//   - Reproducible – all randomness flows through an injectable source
//   - Observable – every snapshot carries the best tour and the last sample
//
// Subpackages:
//
//	matrix/: City, Distances and input validation
//	tsp/   : solvers, tour utilities, annealing schedule, exact oracle
//	driver/: Run, Player, RunMany, YAML jobs, Prometheus metrics
//
// Quick ASCII example:
//
//	(0,10)───(10,10)
//	   │         │
//	 (0,0)────(10,0)
//
//	four cities whose optimal tour is the square, length 40.
//
//	go get github.com/rijkvp/tsp
package tsp
