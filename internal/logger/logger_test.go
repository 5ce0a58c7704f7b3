package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParsesLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New("debug", &buf)

	assert.Equal(t, zerolog.DebugLevel, log.GetLevel())
	log.Debug().Str("component", "game").Msg("move applied")
	assert.Contains(t, buf.String(), `"component":"game"`)
	assert.Contains(t, buf.String(), `"message":"move applied"`)
}

func TestNewUnknownLevelFallsBackToWarn(t *testing.T) {
	var buf bytes.Buffer
	log := New("chatty", &buf)

	assert.Equal(t, zerolog.WarnLevel, log.GetLevel())
	log.Info().Msg("hidden")
	assert.Empty(t, buf.String())
}

func TestOpenDefaultsToStderr(t *testing.T) {
	w, closeFn, err := Open("")
	require.NoError(t, err)
	assert.Equal(t, os.Stderr, w)
	assert.NoError(t, closeFn())
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "connect4.log")

	w, closeFn, err := Open(path)
	require.NoError(t, err)

	log := New("info", w)
	log.Info().Msg("hello")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}
