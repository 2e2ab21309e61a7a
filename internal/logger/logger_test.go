package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		env     string
		enabled zap.AtomicLevel
		wantErr bool
	}{
		{name: "default level", level: "", env: "development", enabled: zap.NewAtomicLevelAt(zap.InfoLevel)},
		{name: "debug", level: "debug", env: "development", enabled: zap.NewAtomicLevelAt(zap.DebugLevel)},
		{name: "production warn", level: "warn", env: "production", enabled: zap.NewAtomicLevelAt(zap.WarnLevel)},
		{name: "invalid", level: "loud", env: "production", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.level, tt.env)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			lvl := tt.enabled.Level()
			assert.True(t, log.Core().Enabled(lvl))
			if lvl > zap.DebugLevel {
				assert.False(t, log.Core().Enabled(lvl-1))
			}
		})
	}
}
