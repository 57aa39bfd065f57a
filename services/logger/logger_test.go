package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, ErrorLevel, ParseLevel(" error "))
	assert.Equal(t, InfoLevel, ParseLevel("info"))
	assert.Equal(t, InfoLevel, ParseLevel(""))
}

func TestDefaultLoggerFormats(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := NewFromZap(zap.New(core))

	l.Info("loaded %d orders", 3)
	l.Debug("hidden %s", "debug")
	l.Error("fetch failed: %v", "boom")

	entries := logs.All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, "loaded 3 orders", entries[0].Message)
		assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
		assert.Equal(t, "fetch failed: boom", entries[1].Message)
	}
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		NewNop().Info("nothing %d", 1)
	})
}
