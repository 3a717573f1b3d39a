package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/invaders/config"
	"github.com/lixenwraith/invaders/parameter"
)

func TestNew_DisabledWithoutFile(t *testing.T) {
	l, err := New(config.Log{Level: "debug"})
	require.NoError(t, err)
	// A no-op core reports every level as disabled
	assert.False(t, l.Core().Enabled(-1))
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "invaders.log")

	l, err := New(config.Log{Level: "info", File: path})
	require.NoError(t, err)
	l.Info("session started")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "session started")
}

func TestNew_RotatesOversizedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invaders.log")

	big := make([]byte, parameter.MaxLogSize+1)
	require.NoError(t, os.WriteFile(path, big, 0o644))

	l, err := New(config.Log{File: path})
	require.NoError(t, err)
	_ = l.Sync()

	old, err := os.Stat(path + ".old")
	require.NoError(t, err)
	assert.Equal(t, int64(parameter.MaxLogSize+1), old.Size())

	fresh, err := os.Stat(path)
	require.NoError(t, err)
	assert.Less(t, fresh.Size(), int64(parameter.MaxLogSize))
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	_, err := New(config.Log{Level: "chatty", File: filepath.Join(t.TempDir(), "x.log")})
	require.Error(t, err)
}
