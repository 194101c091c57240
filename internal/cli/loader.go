package cli

import (
	"github.com/roach88/vibestream/internal/feed"
	"github.com/roach88/vibestream/internal/seed"
)

// buildStore creates a store seeded from the given fixture path, or from
// the embedded default fixture when the path is empty.
func buildStore(seedPath string) (*feed.Store, error) {
	doc := seed.Default()
	if seedPath != "" {
		var err error
		doc, err = seed.Load(seedPath)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to load seed fixture", err)
		}
	}

	st := feed.NewStore()
	if err := doc.Apply(st); err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to apply seed fixture", err)
	}
	return st, nil
}
