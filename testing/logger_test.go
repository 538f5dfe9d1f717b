package testing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatFields(t *testing.T) {
	require.Empty(t, formatFields(nil))
	require.Equal(t, " rank=2 tasks=7", formatFields([]any{"rank", 2, "tasks", 7}))
	require.Equal(t, " rank=<missing>", formatFields([]any{"rank"}))
}

func TestRankLogger(t *testing.T) {
	logger := NewRankLogger(t, 3)
	logger.Info("built", "tasks", 4)
	logger.Debug("padding", "points", 12)

	require.Equal(t, "[rank 3] ", logger.(*testLogger).prefix)
}
