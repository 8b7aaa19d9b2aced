package logger_test

import (
	"testing"

	"repo-search/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		wantErr bool
		enabled zap.AtomicLevel
	}{
		{"json info", "info", "json", false, zap.NewAtomicLevelAt(zap.InfoLevel)},
		{"console debug", "debug", "console", false, zap.NewAtomicLevelAt(zap.DebugLevel)},
		{"upper case level", "WARN", "json", false, zap.NewAtomicLevelAt(zap.WarnLevel)},
		{"unknown level", "verbose", "json", true, zap.AtomicLevel{}},
		{"unknown format", "info", "xml", true, zap.AtomicLevel{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := logger.New(tt.level, tt.format)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, log.Core().Enabled(tt.enabled.Level()))
			assert.False(t, log.Core().Enabled(tt.enabled.Level()-1))
		})
	}
}
