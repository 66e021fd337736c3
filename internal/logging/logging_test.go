package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/at-ishikawa/wordbook/internal/config"
)

func TestBuildConfig(t *testing.T) {
	tests := []struct {
		name         string
		cfg          config.LogConfig
		debug        bool
		wantLevel    zapcore.Level
		wantEncoding string
		wantErr      bool
	}{
		{
			name:         "json at info",
			cfg:          config.LogConfig{Level: "info", Format: "json"},
			wantLevel:    zapcore.InfoLevel,
			wantEncoding: "json",
		},
		{
			name:         "console at warn",
			cfg:          config.LogConfig{Level: "warn", Format: "console"},
			wantLevel:    zapcore.WarnLevel,
			wantEncoding: "console",
		},
		{
			name:         "debug flag overrides level",
			cfg:          config.LogConfig{Level: "error", Format: "json"},
			debug:        true,
			wantLevel:    zapcore.DebugLevel,
			wantEncoding: "json",
		},
		{
			name:         "empty level defaults to info",
			cfg:          config.LogConfig{},
			wantLevel:    zapcore.InfoLevel,
			wantEncoding: "json",
		},
		{
			name:    "unknown level",
			cfg:     config.LogConfig{Level: "verbose"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildConfig(tt.cfg, tt.debug)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, got.Level.Level())
			assert.Equal(t, tt.wantEncoding, got.Encoding)
		})
	}
}

func TestNew(t *testing.T) {
	logger, err := New(config.LogConfig{Level: "info", Format: "json"}, false)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}
