// Package feed implements the vibestream in-memory social feed core.
//
// The package holds the canonical entity state (users, posts, notifications)
// and exposes the intent-driven operations that mutate it: profile lifecycle,
// follow/unfollow, like/unlike, comment, post creation, and notification
// bookkeeping. Derived views (trending tags, suggestions, search, unread
// counts) are pure functions recomputed over the current snapshot.
//
// ARCHITECTURE:
//
// Snapshot Replacement:
// Every mutation builds a new slice for the affected collection rather than
// mutating elements in place. Accessors hand out copies. No reader can
// observe a half-applied write - in particular, the two sides of a follow
// edge always change together.
//
// Explicit Actors:
// There is no ambient "current user". Every operation takes the acting
// user's id as a parameter, so multiple sessions can be exercised against
// one store in tests. SelectProfile only verifies identity; the caller owns
// the active session.
//
// Injectable Time and Identity:
// Timestamps come from a Clock and entity ids from an IDGenerator, both
// swappable. Production uses wall time and UUIDv7; tests use the
// deterministic implementations in internal/testutil.
//
// The model is single-session and strictly in-memory: nothing is persisted,
// and state is lost when the process exits.
package feed
