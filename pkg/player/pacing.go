package player

import (
	"context"
	"time"
)

// PacingPolicy controls the wait between frame renders.
type PacingPolicy interface {
	// Wait blocks for the policy's duration or until the context is
	// cancelled, whichever comes first.
	Wait(ctx context.Context, interval time.Duration) error
}

// FixedIntervalSleep sleeps the full nominal frame interval after each
// render, without compensating for render time. Actual playback rate
// therefore drifts slightly below nominal under load; that drift is
// part of the playback contract. A deadline-compensating policy must be
// a separate implementation selected explicitly, not a replacement.
type FixedIntervalSleep struct{}

// Wait sleeps for the interval. Cancellation wakes the sleep early.
func (FixedIntervalSleep) Wait(ctx context.Context, interval time.Duration) error {
	timer := time.NewTimer(interval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
