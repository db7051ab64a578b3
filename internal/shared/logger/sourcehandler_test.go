package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var m map[string]any
		require.NoError(t, dec.Decode(&m))
		out = append(out, m)
	}
	return out
}

func TestSourceHandler_OnlyConfiguredLevels(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	log := slog.New(NewSourceHandler(base, slog.LevelWarn, slog.LevelError))

	log.Info("info line")
	log.Warn("warn line")
	log.Error("error line")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 3)

	assert.NotContains(t, lines[0], slog.SourceKey)
	assert.Contains(t, lines[1], slog.SourceKey)
	assert.Contains(t, lines[2], slog.SourceKey)

	src, ok := lines[1][slog.SourceKey].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, src["file"], "sourcehandler_test.go")
}

func TestSourceHandler_PreservesAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewJSONHandler(&buf, nil)
	log := slog.New(NewSourceHandler(base, slog.LevelError)).
		With("booking_id", 42).
		WithGroup("req")

	log.Error("failed", "path", "/bookings/42")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, float64(42), lines[0]["booking_id"])
	req, ok := lines[0]["req"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "/bookings/42", req["path"])
}

func TestSourceHandler_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})
	log := slog.New(NewSourceHandler(base, slog.LevelDebug))

	log.Debug("dropped")
	assert.Zero(t, buf.Len())
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}
