package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("CONNECT4_COLOR", "")
	t.Setenv("CONNECT4_GLYPHS", "")
	t.Setenv("CONNECT4_LOG_LEVEL", "")
	t.Setenv("CONNECT4_LOG_FILE", "")

	cfg := LoadConfig()

	assert.Equal(t, GlyphsEmoji, cfg.Glyphs)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Empty(t, cfg.LogFile)
	_, noColor := os.LookupEnv("NO_COLOR")
	assert.Equal(t, !noColor, cfg.Color)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("CONNECT4_COLOR", "false")
	t.Setenv("CONNECT4_GLYPHS", "ASCII")
	t.Setenv("CONNECT4_LOG_LEVEL", "debug")
	t.Setenv("CONNECT4_LOG_FILE", "/tmp/connect4.log")

	cfg := LoadConfig()

	assert.False(t, cfg.Color)
	assert.Equal(t, GlyphsASCII, cfg.Glyphs)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/connect4.log", cfg.LogFile)
}

func TestLoadConfigInvalidGlyphsFallsBack(t *testing.T) {
	t.Setenv("CONNECT4_GLYPHS", "hieroglyphs")

	assert.Equal(t, GlyphsEmoji, LoadConfig().Glyphs)
}

func TestNoColorOverrides(t *testing.T) {
	t.Setenv("CONNECT4_COLOR", "true")
	t.Setenv("NO_COLOR", "1")

	assert.False(t, LoadConfig().Color)
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("CONNECT4_TEST_BOOL", "yes please")
	assert.True(t, GetEnvAsBool("CONNECT4_TEST_BOOL", true))

	t.Setenv("CONNECT4_TEST_BOOL", "0")
	assert.False(t, GetEnvAsBool("CONNECT4_TEST_BOOL", true))

	t.Setenv("CONNECT4_TEST_BOOL", "")
	assert.True(t, GetEnvAsBool("CONNECT4_TEST_BOOL", true))
}
