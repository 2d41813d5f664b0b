package logging

import (
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	Set(zap.New(core))
	t.Cleanup(func() { Set(nil) })
	return logs
}

func TestDefaultIsNop(t *testing.T) {
	assert.NotNil(t, L())
	L().Info("dropped")
}

func TestNamed(t *testing.T) {
	logs := observe(t)
	Named("canvas").Debug("frame", zap.Int("blocks", 12))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "canvas", entries[0].LoggerName)
	assert.Equal(t, int64(12), entries[0].ContextMap()["blocks"])
}

func TestStdLogRedirect(t *testing.T) {
	logs := observe(t)
	log.Printf("Warning: %s", "no audio device")

	entries := logs.FilterMessage("Warning: no audio device").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
}

func TestStd(t *testing.T) {
	logs := observe(t)
	Std("ui").Print("button pressed")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "ui", entries[0].LoggerName)
	assert.Equal(t, "button pressed", entries[0].Message)
}

func TestInit(t *testing.T) {
	t.Cleanup(func() { Set(nil) })
	require.NoError(t, Init(true))
	assert.True(t, L().Core().Enabled(zapcore.DebugLevel))

	require.NoError(t, Init(false))
	assert.False(t, L().Core().Enabled(zapcore.DebugLevel))
	assert.True(t, L().Core().Enabled(zapcore.InfoLevel))
	Sync()
}
