// Package harness runs declarative feed scenarios for conformance testing.
//
// A scenario is a YAML file: a seed fixture, a sequence of steps performed
// by named users, and assertions over the final state. Every run uses a
// fresh store with a deterministic clock and id generator, so the same
// scenario always produces the same trace and final state. Golden files
// capture that trace for regression comparison.
package harness
