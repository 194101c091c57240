package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrendingCommand_Text(t *testing.T) {
	out, err := executeCommand(t, "trending")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "#city  1", lines[0])
	assert.Equal(t, "#morning  1", lines[1])
}

func TestTrendingCommand_Limit(t *testing.T) {
	out, err := executeCommand(t, "trending", "--limit", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 2)
}
