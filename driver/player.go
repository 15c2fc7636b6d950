// SPDX-License-Identifier: MIT

package driver

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/rijkvp/tsp/tsp"
)

// DefaultFrameRate is the tick rate Play uses when given a nil limiter.
const DefaultFrameRate = 60

// Frame is what a front end renders after one tick.
type Frame struct {
	State        tsp.State
	Paused       bool
	Finished     bool
	StepsPerTick int
	Ticks        int64
}

// Running reports whether the next tick will advance the solver.
func (f Frame) Running() bool { return !f.Paused && !f.Finished }

// Player advances a solver a bounded number of steps per tick so a redraw
// loop stays responsive. All methods are safe for concurrent use.
type Player struct {
	mu           sync.Mutex
	alg          tsp.Algorithm
	kind         string
	stepsPerTick int
	paused       bool
	finished     bool
	ticks        int64
	state        tsp.State
	log          *zap.Logger
	metrics      *Metrics
}

// NewPlayer wraps alg. stepsPerTick < 1 selects DefaultStepsPerTick.
func NewPlayer(alg tsp.Algorithm, stepsPerTick int, opts ...Option) (*Player, error) {
	if alg == nil {
		return nil, ErrNilAlgorithm
	}
	if stepsPerTick < 1 {
		stepsPerTick = DefaultStepsPerTick
	}
	o := gatherOptions(opts)
	kind := alg.Kind().String()

	return &Player{
		alg:          alg,
		kind:         kind,
		stepsPerTick: stepsPerTick,
		state:        alg.State(),
		log:          o.logger.With(zap.String("algorithm", kind)),
		metrics:      o.metrics,
	}, nil
}

// Tick performs up to StepsPerTick steps unless paused or finished, and
// returns the frame to render. A paused or finished player keeps returning
// its last snapshot.
func (p *Player) Tick() Frame {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.ticks++
	if !p.paused && !p.finished {
		steps := 0
		for steps < p.stepsPerTick {
			steps++
			if p.alg.Step() {
				p.finished = true
				break
			}
		}
		p.state = p.alg.State()
		p.metrics.observeTick(p.kind, steps, p.state.Length)
		if p.finished {
			p.log.Info("solver finished",
				zap.Int64("ticks", p.ticks),
				zap.Float64("length", p.state.Length),
			)
		}
	}

	return p.frameLocked()
}

// Frame returns the current frame without stepping.
func (p *Player) Frame() Frame {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.frameLocked()
}

func (p *Player) frameLocked() Frame {
	return Frame{
		State:        p.state,
		Paused:       p.paused,
		Finished:     p.finished,
		StepsPerTick: p.stepsPerTick,
		Ticks:        p.ticks,
	}
}

// Pause stops stepping on subsequent ticks.
func (p *Player) Pause() {
	p.mu.Lock()
	p.paused = true
	p.mu.Unlock()
}

// Resume re-enables stepping.
func (p *Player) Resume() {
	p.mu.Lock()
	p.paused = false
	p.mu.Unlock()
}

// Toggle flips the paused flag and returns the new value.
func (p *Player) Toggle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.paused = !p.paused

	return p.paused
}

// Faster doubles the steps per tick and returns the new value.
func (p *Player) Faster() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stepsPerTick *= 2
	p.log.Debug("speed changed", zap.Int("steps_per_tick", p.stepsPerTick))

	return p.stepsPerTick
}

// Slower halves the steps per tick, never going below one.
func (p *Player) Slower() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stepsPerTick > 1 {
		p.stepsPerTick /= 2
	}
	p.log.Debug("speed changed", zap.Int("steps_per_tick", p.stepsPerTick))

	return p.stepsPerTick
}

// Play ticks the player at the pace of limiter until the solver finishes or
// ctx is cancelled, handing every frame to render. A nil limiter ticks at
// DefaultFrameRate; a nil render discards frames.
func (p *Player) Play(ctx context.Context, limiter *rate.Limiter, render func(Frame)) error {
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Limit(DefaultFrameRate), 1)
	}
	for {
		if err := limiter.Wait(ctx); err != nil {
			return err
		}
		f := p.Tick()
		if render != nil {
			render(f)
		}
		if f.Finished {
			return nil
		}
	}
}
