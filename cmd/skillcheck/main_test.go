package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := rootCmd()

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}

	for _, want := range []string{"validate", "quick", "check-imports", "list-rules", "watch", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestValidateCmd_Flags(t *testing.T) {
	cmd := validateCmd(&cliOptions{})

	for _, flag := range []string{"skill", "all", "url", "strict", "format"} {
		require.NotNil(t, cmd.Flags().Lookup(flag), "missing flag %s", flag)
	}
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelWarn},
	}

	for _, tt := range tests {
		logger := newLogger(tt.level)
		assert.True(t, logger.Enabled(context.Background(), tt.want), "level %s", tt.level)
		if tt.want > slog.LevelDebug {
			assert.False(t, logger.Enabled(context.Background(), tt.want-1), "level %s", tt.level)
		}
	}
}
