// Package latency emulates network delay for in-process responses.
package latency

import (
	"context"
	"time"
)

// Simulator defers response delivery by a fixed duration. It is purely a
// scheduling concern and never alters response content.
type Simulator struct {
	delay time.Duration
}

// New creates a Simulator. Non-positive delays mean immediate delivery.
func New(delay time.Duration) *Simulator {
	if delay < 0 {
		delay = 0
	}
	return &Simulator{delay: delay}
}

// Delay returns the configured duration.
func (s *Simulator) Delay() time.Duration {
	if s == nil {
		return 0
	}
	return s.delay
}

// Wait blocks for the configured delay. A zero delay returns immediately.
// Cancelling the context cuts the wait short and returns the context error.
func (s *Simulator) Wait(ctx context.Context) error {
	if s == nil || s.delay <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(s.delay)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
