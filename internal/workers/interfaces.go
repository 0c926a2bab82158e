// Package workers provides abstractions for managing and running
// background workers in the application.
//
// It defines the Worker interface, a Workers aggregate that runs several
// workers in a unified way, and the Scheduler abstraction used by every
// piece of time-driven background work so that it can be driven by a
// manual clock in tests.
package workers

import (
	"context"
	"time"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled or the worker has nothing left to do.
type Worker interface {
	Run(ctx context.Context)
}

// Timer is a pending callback registered with a Scheduler.
type Timer interface {
	// Stop prevents the callback from firing. It reports whether the call
	// stopped the timer, false if it already fired or was stopped.
	Stop() bool
}

// Scheduler is the "run after duration" primitive used by time-driven
// background work.
type Scheduler interface {
	// Now returns the current time of the scheduler's clock.
	Now() time.Time

	// AfterFunc calls f in its own goroutine (real scheduler) or inline
	// (manual scheduler) once d has elapsed.
	AfterFunc(d time.Duration, f func()) Timer

	// After returns a channel that receives the clock time once d has
	// elapsed.
	After(d time.Duration) <-chan time.Time
}
