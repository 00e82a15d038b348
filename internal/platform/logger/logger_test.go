package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLevels(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		debugLogged bool
		warnLogged  bool
	}{
		{
			name:        "debug level logs everything",
			level:       "debug",
			debugLogged: true,
			warnLogged:  true,
		},
		{
			name:        "info level drops debug",
			level:       "info",
			debugLogged: false,
			warnLogged:  true,
		},
		{
			name:        "error level drops warn",
			level:       "error",
			debugLogged: false,
			warnLogged:  false,
		},
		{
			name:        "unknown level falls back to info",
			level:       "loud",
			debugLogged: false,
			warnLogged:  true,
		},
		{
			name:        "empty level defaults to info",
			level:       "",
			debugLogged: false,
			warnLogged:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log, err := Setup(LoggerConfig{Level: tt.level, Output: &buf})
			require.NoError(t, err)
			require.NotNil(t, log)

			log.Debug("debug message")
			log.Warn("warn message")

			out := buf.String()
			assert.Equal(t, tt.debugLogged, bytes.Contains([]byte(out), []byte("debug message")))
			assert.Equal(t, tt.warnLogged, bytes.Contains([]byte(out), []byte("warn message")))
		})
	}
}

func TestSetupEmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := Setup(LoggerConfig{Level: "info", Output: &buf})
	require.NoError(t, err)

	log.Info("hello", slog.String("demo", "inventory"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "inventory", record["demo"])
}

func TestSetupSetsDefaultLogger(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	log, err := Setup(LoggerConfig{Level: "info", Output: &buf})
	require.NoError(t, err)
	assert.Equal(t, log.Handler(), slog.Default().Handler())
}

func TestWithContextAndFromContext(t *testing.T) {
	t.Parallel()
	base := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	ctx := WithContext(context.Background(), base)

	got, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Same(t, base, got)

	_, ok = FromContext(context.Background())
	assert.False(t, ok)
}

func TestFromContextOrDefault(t *testing.T) {
	t.Parallel()
	base := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	fallback := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	tests := []struct {
		name     string
		ctx      context.Context
		def      *slog.Logger
		expected *slog.Logger
	}{
		{
			name:     "logger from context wins",
			ctx:      WithContext(context.Background(), base),
			def:      fallback,
			expected: base,
		},
		{
			name:     "fallback when context carries none",
			ctx:      context.Background(),
			def:      fallback,
			expected: fallback,
		},
		{
			name:     "nil context uses fallback",
			ctx:      nil,
			def:      fallback,
			expected: fallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Same(t, tt.expected, FromContextOrDefault(tt.ctx, tt.def))
		})
	}
}

func TestFromContextOrDefaultFallsBackToProcessDefault(t *testing.T) {
	got := FromContextOrDefault(context.Background(), nil)
	assert.Same(t, slog.Default(), got)
}
