package feed

import "time"

// Clock supplies entity timestamps.
//
// Implemented by WallClock (production) and testutil.Clock (tests).
// Timestamps are display metadata only - collection ordering is structural
// (posts and notifications are prepended), so the model never depends on
// wall-clock comparisons for ordering.
type Clock interface {
	Now() time.Time
}

// WallClock reads the system clock in UTC.
//
// UTC keeps snapshots comparable regardless of the host timezone.
type WallClock struct{}

// Now returns the current UTC time.
func (WallClock) Now() time.Time {
	return time.Now().UTC()
}
