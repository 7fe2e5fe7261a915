package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLevelFunctions(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	Use(zap.New(core))
	t.Cleanup(func() { Use(zap.NewNop()) })

	Info("city %s created", "Metropolis")
	Warning("city %d not found", 7)
	Error("delete failed: %v", "boom")

	entries := logs.AllUntimed()
	if assert.Len(t, entries, 3) {
		assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
		assert.Equal(t, "city Metropolis created", entries[0].Message)
		assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
		assert.Equal(t, "city 7 not found", entries[1].Message)
		assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	}
}

func TestLoggingBeforeSetupIsSafe(t *testing.T) {
	Use(zap.NewNop())
	assert.NotPanics(t, func() { Info("no setup yet") })
}
