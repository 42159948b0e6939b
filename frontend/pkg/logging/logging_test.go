package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := New("info", "text", &buf)

	logger.Debug("hidden")
	logger.Info("server listening", "addr", ":3000")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "server listening")
	assert.Contains(t, out, ":3000")
	assert.Contains(t, out, "frontend")
}

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := New("warn", "JSON", &buf)

	logger.Info("dropped")
	logger.Warn("backend fetch failed", "request_id", "abc")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "backend fetch failed", entry["msg"])
	assert.Equal(t, "abc", entry["request_id"])
	assert.Equal(t, "frontend", entry["service"])
}

func TestJSONHandlerLevels(t *testing.T) {
	tests := []struct {
		level     string
		debugSeen bool
	}{
		{"trace", true},
		{"debug", true},
		{"info", false},
		{"error", false},
		{"bogus", false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(tt.level, "json", &buf)
			logger.Debug("debug line")
			assert.Equal(t, tt.debugSeen, bytes.Contains(buf.Bytes(), []byte("debug line")))
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in         string
		level      slog.Level
		withSource bool
	}{
		{"trace", slog.LevelDebug, true},
		{"DeBuG", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{" warning ", slog.LevelWarn, false},
		{"ERROR", slog.LevelError, false},
		{"", slog.LevelInfo, false},
		{"verbose", slog.LevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := parseLevel(tt.in)
			assert.Equal(t, tt.level, got.level)
			assert.Equal(t, tt.withSource, got.withSource)
		})
	}
}

func TestTextHandlerHonoursLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New("error", "text", &buf)

	logger.Warn("quiet")
	logger.Error("loud")

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}
