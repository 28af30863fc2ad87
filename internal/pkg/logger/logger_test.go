// internal/pkg/logger/logger_test.go
package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_ContextValues(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&LogConfig{Level: "debug", Format: "json", Output: &buf})

	ctx := WithValue(context.Background(), ContextKeyRequestID, "req-42")
	ctx = WithValue(ctx, ContextKeyUsername, "keeper01")
	log.InfoContext(ctx, "feeding updated", slog.String("table", "pakan"))

	entry := decodeLine(t, &buf)
	assert.Equal(t, "req-42", entry["request_id"])
	assert.Equal(t, "keeper01", entry["username"])
	assert.Equal(t, "pakan", entry["table"])
	assert.Equal(t, "INFO", entry["severity"])
	assert.Equal(t, "req-42", RequestID(ctx))
}

func TestNewLogger_Sanitization(t *testing.T) {
	tests := []struct {
		name    string
		log     func(l *slog.Logger)
		key     string
		want    string
		notWant string
	}{
		{
			name: "redacts_password_attribute",
			log: func(l *slog.Logger) {
				l.Info("login", slog.String("password", "hunter22"))
			},
			key:  "password",
			want: redacted,
		},
		{
			name: "redacts_connection_string_password",
			log: func(l *slog.Logger) {
				l.Info("connecting", slog.String("dsn", "postgres://sizopi:s3cret@db:5432/zoo"))
			},
			key:     "dsn",
			want:    "postgres://sizopi:" + redacted + "@db:5432/zoo",
			notWant: "s3cret",
		},
		{
			name: "redacts_secrets_inside_errors",
			log: func(l *slog.Logger) {
				l.Error("failed", slog.Any("error", errors.New("auth failed: password=abc123")))
			},
			key:     "error",
			want:    "password=" + redacted,
			notWant: "abc123",
		},
		{
			name: "keeps_plain_values",
			log: func(l *slog.Logger) {
				l.Info("habitat", slog.String("nama", "Savana"))
			},
			key:  "nama",
			want: "Savana",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(NewLogger(&LogConfig{Level: "info", Output: &buf}))

			entry := decodeLine(t, &buf)
			value, _ := entry[tt.key].(string)
			assert.Contains(t, value, tt.want)
			if tt.notWant != "" {
				assert.NotContains(t, buf.String(), tt.notWant)
			}
		})
	}
}

func TestNewLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&LogConfig{Level: "warn", Output: &buf})

	log.Info("dropped")
	assert.Zero(t, buf.Len())

	log.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestPrettyTextHandler(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&LogConfig{Level: "debug", Format: "text", Output: &buf})

	log.With(slog.String("component", "worker")).Debug("task done", slog.Int("count", 3))

	line := buf.String()
	assert.True(t, strings.HasSuffix(line, "\n"))
	assert.Contains(t, line, "task done")
	assert.Contains(t, line, "component")
	assert.Contains(t, line, "count")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}
