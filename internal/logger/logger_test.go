package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authvault/internal/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json format", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithFormat(logger.FormatJSON),
			logger.WithOutput(&buf),
			logger.WithAttr(slog.String("app", "authvault")),
		)
		log.Info("started", slog.Int("entries", 3))

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "started", record["msg"])
		assert.Equal(t, "authvault", record["app"])
		assert.EqualValues(t, 3, record["entries"])
	})

	t.Run("text format", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithFormat(logger.FormatText),
			logger.WithOutput(&buf),
		)
		log.Warn("vault file missing")

		assert.Contains(t, buf.String(), "vault file missing")
		assert.Contains(t, buf.String(), "level=WARN")
	})

	t.Run("level filtering", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithLevel(slog.LevelWarn),
			logger.WithOutput(&buf),
		)
		log.Info("suppressed")
		log.Warn("visible")

		assert.NotContains(t, buf.String(), "suppressed")
		assert.Contains(t, buf.String(), "visible")
	})

	t.Run("invalid format panics", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			logger.New(logger.WithFormat("xml"))
		})
	})
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  slog.Level
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: "warn", want: slog.LevelWarn},
		{input: "warning", want: slog.LevelWarn},
		{input: " error ", want: slog.LevelError},
		{input: "", want: slog.LevelInfo},
		{input: "nonsense", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, logger.ParseLevel(tt.input))
		})
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, logger.FormatJSON, logger.ParseFormat("json"))
	assert.Equal(t, logger.FormatJSON, logger.ParseFormat(" JSON "))
	assert.Equal(t, logger.FormatText, logger.ParseFormat("text"))
	assert.Equal(t, logger.FormatText, logger.ParseFormat(""))
	assert.Equal(t, logger.FormatText, logger.ParseFormat("yaml"))
}
