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

func restoreDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestNew_JSONCarriesIdentity(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{
		Level:       "info",
		Format:      "JSON",
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: "test",
	}, &buf)

	l.Info("test message", "key", "value", "number", 42)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-service", entry[AttrKeyService])
	assert.Equal(t, "1.0.0", entry[AttrKeyVersion])
	assert.Equal(t, "test", entry[AttrKeyEnvironment])
	assert.Equal(t, "test message", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "value", entry["key"])
	assert.Equal(t, float64(42), entry["number"])
}

func TestNew_OmitsEmptyIdentity(t *testing.T) {
	var buf bytes.Buffer
	New(Config{Format: FormatJSON, ServiceName: "svc"}, &buf).Info("x")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "svc", entry[AttrKeyService])
	assert.NotContains(t, entry, AttrKeyVersion)
	assert.NotContains(t, entry, AttrKeyEnvironment)
}

func TestNew_DoesNotReplaceDefault(t *testing.T) {
	restoreDefault(t)
	before := slog.Default()
	New(Config{}, &bytes.Buffer{})
	assert.Same(t, before, slog.Default())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"loud", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), "level %q", tt.in)
	}
}

func TestInitLogger_LevelFiltering(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer
	InitLogger(Config{Level: "warn", Format: FormatText}, &buf)

	slog.Info("hidden")
	slog.Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}

func TestFromContext_RequestID(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer
	InitLogger(Config{Format: FormatJSON}, &buf)

	ctx := WithRequestID(context.Background(), "test-req-123")
	assert.Equal(t, "test-req-123", GetRequestID(ctx))
	assert.Equal(t, "", GetRequestID(context.Background()))

	FromContext(ctx).Info("with id")
	FromContext(context.Background()).Info("without id")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), `"request_id":"test-req-123"`)
	assert.NotContains(t, string(lines[1]), AttrKeyRequestID)
}

func TestWithRequestID_Overrides(t *testing.T) {
	ctx := WithRequestID(context.Background(), "a")
	ctx = WithRequestID(ctx, "b")
	assert.Equal(t, "b", GetRequestID(ctx))
}

func TestGenerateRequestID(t *testing.T) {
	a, b := GenerateRequestID(), GenerateRequestID()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}
