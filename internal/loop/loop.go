// Package loop drives a per-frame update callback at a fixed cadence,
// converting monotonic timestamps into elapsed-seconds deltas. Keeping the
// scheduling here lets the orbit and camera updates run against synthetic
// clocks in tests.
package loop

import (
	"context"
	"fmt"
	"time"
)

// Clock converts a stream of timestamps into elapsed-seconds deltas. The
// first timestamp establishes the baseline and reports dt 0; timestamps that
// go backwards are treated as a paused clock.
type Clock struct {
	last    time.Time
	started bool
}

func (c *Clock) Delta(now time.Time) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	if dt < 0 {
		dt = 0
	}
	c.last = now
	return dt
}

// Reset forgets the baseline; the next Delta reports 0 again.
func (c *Clock) Reset() {
	c.started = false
}

// Frame is invoked once per tick with the seconds elapsed since the
// previous tick.
type Frame func(dt float64)

type Loop struct {
	frame    Frame
	interval time.Duration
	clock    Clock
}

// New returns a loop ticking at the given rate. rate is frames per second.
func New(rate int, frame Frame) (*Loop, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("frame rate must be positive, got %d", rate)
	}
	if frame == nil {
		return nil, fmt.Errorf("frame callback must not be nil")
	}
	return &Loop{
		frame:    frame,
		interval: time.Second / time.Duration(rate),
	}, nil
}

// Step feeds one timestamp to the loop.
func (l *Loop) Step(now time.Time) {
	l.frame(l.clock.Delta(now))
}

// Run ticks until the context is cancelled. The render loop never
// terminates on its own during a session.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.Step(time.Now())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			l.Step(now)
		}
	}
}
