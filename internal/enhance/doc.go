// Package enhance calls the remote generative-text service that backs the
// two AI features: caption enhancement (draft + optional image in,
// structured {caption, tags} out) and short comment suggestion (post text
// in, one line out).
//
// The call is fire-and-forget from the feed model's perspective: results
// feed back through the same synchronous set-content path as any user
// edit, last writer wins. Failure is always non-fatal - callers degrade to
// the unchanged draft or to FallbackComment. Nothing here retries; a
// missing API key fails immediately, before any network I/O.
package enhance
