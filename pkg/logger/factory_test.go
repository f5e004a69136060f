package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gtinkit/pkg/environment"
	"github.com/dmitrymomot/gtinkit/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("creates JSON logger by default", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		require.NotNil(t, log)
		log.Info("hello")

		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text format", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText))
		log.Info("hello", logger.Code("73513537"))
		out := buf.String()
		assert.Contains(t, out, "level=INFO")
		assert.Contains(t, out, "code=73513537")
	})

	t.Run("invalid format panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
	})

	t.Run("level filters records", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelWarn))
		log.Info("dropped")
		assert.Empty(t, buf.String())
		log.Warn("kept")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("static attributes", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithAttr(logger.Component("codec")))
		log.Info("hello")
		assert.Equal(t, "codec", decode(t, buf)["component"])
	})

	t.Run("nil output is ignored", func(t *testing.T) {
		t.Parallel()
		assert.NotPanics(t, func() { logger.New(logger.WithOutput(nil)) })
	})
}

type ctxKey struct{}

func TestContextValue(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithContextValue("command", ctxKey{}),
		logger.WithContextExtractors(nil),
	)

	log.InfoContext(context.Background(), "no value")
	assert.NotContains(t, decode(t, buf), "command")

	buf.Reset()
	ctx := context.WithValue(context.Background(), ctxKey{}, "validate")
	log.With("extra", 1).InfoContext(ctx, "with value")
	entry := decode(t, buf)
	assert.Equal(t, "validate", entry["command"])
	assert.EqualValues(t, 1, entry["extra"])
}

func TestWithEnvironment(t *testing.T) {
	t.Parallel()

	t.Run("development uses text at debug level", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment(environment.Development, "gtin"), logger.WithOutput(buf))
		log.Debug("msg")
		out := buf.String()
		assert.Contains(t, out, "level=DEBUG")
		assert.Contains(t, out, "service=gtin")
		assert.Contains(t, out, "env=development")
	})

	t.Run("production uses json at info level", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment("prod", "gtin"), logger.WithOutput(buf))
		log.Debug("dropped")
		assert.Empty(t, buf.String())

		log.Info("msg")
		entry := decode(t, buf)
		assert.Equal(t, "gtin", entry["service"])
		assert.Equal(t, "production", entry["env"])
	})
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	log := logger.Discard()
	require.NotNil(t, log)
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}
