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
		debugOn bool
		warnOn  bool
	}{
		{verbose: true, debugOn: true, warnOn: true},
		{verbose: false, debugOn: false, warnOn: true},
	}
	for _, tt := range tests {
		logger, err := New(tt.verbose)
		require.NoError(t, err)
		assert.Equal(t, tt.debugOn, logger.Core().Enabled(zapcore.DebugLevel), "verbose=%v", tt.verbose)
		assert.Equal(t, tt.warnOn, logger.Core().Enabled(zapcore.WarnLevel), "verbose=%v", tt.verbose)
		_ = logger.Sync()
	}
}
