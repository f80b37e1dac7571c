package logger_test

import (
	"path/filepath"
	"testing"

	"github.com/Riaraujo/testecrud/internal/config"
	"github.com/Riaraujo/testecrud/pkg/logger"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		name  string
		mode  string
		level string
		want  zapcore.Level
	}{
		{"release default", "release", "", zapcore.InfoLevel},
		{"debug mode", "debug", "", zapcore.DebugLevel},
		{"explicit wins", "debug", "warn", zapcore.WarnLevel},
		{"unknown falls back", "release", "verbose", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Server: config.ServerConfig{Mode: tt.mode}, Log: config.LogConfig{Level: tt.level}}
			require.Equal(t, tt.want, logger.Level(cfg))
		})
	}
}

func TestInitLogger_File(t *testing.T) {
	file := filepath.Join(t.TempDir(), "app.log")
	cfg := &config.Config{Log: config.LogConfig{Level: "error", File: file, MaxSizeMB: 1}}

	logger.InitLogger(cfg)
	t.Cleanup(logger.Sync)

	require.False(t, logger.Log.Core().Enabled(zapcore.InfoLevel))
	require.True(t, logger.Log.Core().Enabled(zapcore.ErrorLevel))
}
