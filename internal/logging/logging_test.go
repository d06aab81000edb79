package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		verbose bool
		enabled zapcore.Level
		muted   zapcore.Level
	}{
		{verbose: true, enabled: zapcore.DebugLevel, muted: zapcore.DebugLevel - 1},
		{verbose: false, enabled: zapcore.WarnLevel, muted: zapcore.InfoLevel},
	}
	for _, tt := range tests {
		logger, err := New(tt.verbose)
		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(tt.enabled))
		assert.False(t, logger.Core().Enabled(tt.muted))
	}
}
