// SPDX-License-Identifier: MIT

// Package driver runs tsp solvers: headless to completion, interactively a
// bounded number of steps per redraw tick, or repeatedly over a set of seeds.
//
// What:
//
//   - Run: steps an Algorithm until it reports done (or ctx is cancelled)
//     and returns the final snapshot with a run id, step count and duration.
//   - Player: the contract of an interactive front end. Each Tick performs at
//     most StepsPerTick steps and returns a Frame to render; the player can be
//     paused, resumed, sped up and slowed down between ticks. Play paces ticks
//     with a rate.Limiter.
//   - RunMany: one Run per seed, summarised with mean / median / p90 / min /
//     max of the final lengths.
//   - Job: a YAML description of one solve (algorithm, seed, cities,
//     annealing schedule).
//   - Metrics: Prometheus collectors fed by Run and Player.
//
// Solvers are never touched concurrently: Run owns its Algorithm for the
// duration of the call, and Player serialises Tick against Pause/Resume with
// a mutex.
//
// Logging goes through go.uber.org/zap; the default logger discards
// everything.
package driver
