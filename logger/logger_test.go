package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefaultSinkDiscards(t *testing.T) {
	Set(nil)
	assert.NotPanics(t, func() {
		Log.Infow("player died", "height", 12.0)
	})
}

func TestSetRoutesToLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Set(zap.New(core))
	t.Cleanup(func() { Set(nil) })

	Log.Debugw("platform placed", "x", 1.5, "y", 303.0)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "platform placed", entry.Message)
	assert.Equal(t, 303.0, entry.ContextMap()["y"])
}

func TestInitWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skyhop.log")
	require.NoError(t, Init(path, false))
	t.Cleanup(func() { Set(nil) })

	Log.Debug("dropped at info level")
	Log.Info("kept")
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "kept")
	assert.NotContains(t, string(data), "dropped at info level")
}
