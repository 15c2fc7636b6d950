// SPDX-License-Identifier: MIT
// Package driver_test provides a scripted solver shared across *_test.go files.
package driver_test

import (
	"fmt"

	"github.com/rijkvp/tsp/matrix"
	"github.com/rijkvp/tsp/tsp"
)

// countdown reports done on its finishAt-th Step call. Its Length is the
// number of calls so far, which makes progress visible in snapshots.
type countdown struct {
	kind     tsp.Kind
	finishAt int
	calls    int
	onStep   func(call int)
}

func newCountdown(kind tsp.Kind, finishAt int) *countdown {
	return &countdown{kind: kind, finishAt: finishAt}
}

func (c *countdown) Step() bool {
	if c.calls >= c.finishAt {
		return true
	}
	c.calls++
	if c.onStep != nil {
		c.onStep(c.calls)
	}

	return c.calls >= c.finishAt
}

func (c *countdown) State() tsp.State {
	return tsp.State{
		Length: float64(c.calls),
		Path:   []int{0, 1, 2},
		Sample: []int{0, 2, 1},
		Status: fmt.Sprintf("calls=%d", c.calls),
	}
}

func (c *countdown) Kind() tsp.Kind { return c.kind }

// square10 is the unit square scaled by 10; its optimal tour has length 40.
func square10() []matrix.City {
	return []matrix.City{matrix.Pt(0, 0), matrix.Pt(10, 0), matrix.Pt(10, 10), matrix.Pt(0, 10)}
}
