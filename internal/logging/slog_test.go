package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlog(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := NewSlog(slog.New(handler))

	require.NotNil(t, logger)
	require.NotNil(t, logger.logger)
}

func TestNewSlogDefault(t *testing.T) {
	logger := NewSlogDefault()

	require.NotNil(t, logger)
	require.NotNil(t, logger.logger)
}

func TestSlogLogger_Levels(t *testing.T) {
	tests := []struct {
		name  string
		log   func(l *SlogLogger)
		msg   string
		field string
		level string
	}{
		{"debug", func(l *SlogLogger) { l.Debug("round assigned", "round", 3) }, "round assigned", "round=3", "level=DEBUG"},
		{"info", func(l *SlogLogger) { l.Info("build complete", "rank", 1) }, "build complete", "rank=1", "level=INFO"},
		{"warn", func(l *SlogLogger) { l.Warn("pad value", "pad", 3) }, "pad value", "pad=3", "level=WARN"},
		{"error", func(l *SlogLogger) { l.Error("build failed", "error", "boom") }, "build failed", "error=boom", "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := NewSlogText(buf, slog.LevelDebug)

			tt.log(logger)

			output := buf.String()
			assert.Contains(t, output, tt.msg)
			assert.Contains(t, output, tt.field)
			assert.Contains(t, output, tt.level)
		})
	}
}

func TestSlogLogger_LevelFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewSlogText(buf, slog.LevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden")
	require.Empty(t, buf.String())

	logger.Warn("shown")
	require.Contains(t, buf.String(), "shown")
}

func TestSlogLogger_With(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewSlogText(buf, slog.LevelInfo).With("rank", 2)

	logger.Info("build complete")

	require.Contains(t, buf.String(), "rank=2")
}

func TestNopLogger(t *testing.T) {
	logger := NewNop()

	require.NotPanics(t, func() {
		logger.Debug("d", "k", "v")
		logger.Info("i")
		logger.Warn("w")
		logger.Error("e")
		logger.Fatal("f")
	})
}
