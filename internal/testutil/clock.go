// Package testutil provides deterministic clock and id implementations
// shared by tests and the scenario harness.
package testutil

import (
	"sync"
	"time"
)

// Clock is a thread-safe deterministic clock for tests.
//
// Each call to Now() returns the base time advanced by one more fixed
// step, so entity timestamps are reproducible and golden snapshots stay
// byte-stable across runs. Unlike feed.WallClock, Clock can be reset for
// test reuse.
type Clock struct {
	mu   sync.Mutex
	base time.Time
	step time.Duration
	n    int
}

// DefaultBase is the epoch used when no base time is given.
var DefaultBase = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// NewClock creates a deterministic clock starting at DefaultBase,
// advancing one minute per call.
//
// The first call to Now() returns DefaultBase itself.
func NewClock() *Clock {
	return NewClockAt(DefaultBase, time.Minute)
}

// NewClockAt creates a deterministic clock with an explicit base and step.
func NewClockAt(base time.Time, step time.Duration) *Clock {
	return &Clock{base: base, step: step}
}

// Now returns the next timestamp in the sequence.
//
// Thread-safe: uses a mutex to protect the call counter.
// Monotonic: each call returns a strictly later time than the previous.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.base.Add(time.Duration(c.n) * c.step)
	c.n++
	return t
}

// Reset rewinds the clock to its base time.
// After Reset(), the next call to Now() returns the base again.
func (c *Clock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n = 0
}
