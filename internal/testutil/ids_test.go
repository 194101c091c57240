package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequenceGenerator_NumbersFromOne(t *testing.T) {
	g := NewSequenceGenerator("post")

	assert.Equal(t, "post-1", g.NewID())
	assert.Equal(t, "post-2", g.NewID())
	assert.Equal(t, "post-3", g.NewID())
	assert.Equal(t, 3, g.Count())
}

func TestSequenceGenerator_IndependentPrefixes(t *testing.T) {
	a := NewSequenceGenerator("a")
	b := NewSequenceGenerator("b")

	assert.Equal(t, "a-1", a.NewID())
	assert.Equal(t, "b-1", b.NewID())
	assert.Equal(t, "a-2", a.NewID())
}
