package testutil

import (
	"fmt"
	"sync"
)

// SequenceGenerator produces "prefix-1", "prefix-2", ... entity ids.
//
// Unlike feed.FixedGenerator it never exhausts, which suits scenario runs
// where the number of created entities isn't known up front. Ids remain
// fully deterministic for golden comparison.
//
// Thread-safety: safe for concurrent use via internal mutex.
type SequenceGenerator struct {
	mu     sync.Mutex
	prefix string
	n      int
}

// NewSequenceGenerator creates a generator with the given id prefix.
func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

// NewID returns the next id in the sequence. The first id is "prefix-1".
func (g *SequenceGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s-%d", g.prefix, g.n)
}

// Count returns how many ids have been handed out.
func (g *SequenceGenerator) Count() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.n
}
