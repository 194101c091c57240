package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGolden_Scenarios(t *testing.T) {
	scenarios := []string{
		"like-and-comment",
		"follow-and-post",
	}

	for _, name := range scenarios {
		t.Run(name, func(t *testing.T) {
			s, err := LoadScenario(filepath.Join("testdata", "scenarios", name+".yaml"))
			require.NoError(t, err)

			require.NoError(t, RunWithGolden(t, s))
		})
	}
}
