package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	GlyphsEmoji = "emoji"
	GlyphsASCII = "ascii"
)

type Config struct {
	Color    bool
	Glyphs   string
	LogLevel string
	LogFile  string
}

func LoadConfig() *Config {
	color := GetEnvAsBool("CONNECT4_COLOR", true)
	// https://no-color.org
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		color = false
	}

	glyphs := strings.ToLower(GetEnv("CONNECT4_GLYPHS", GlyphsEmoji))
	if glyphs != GlyphsEmoji && glyphs != GlyphsASCII {
		log.Warn().Str("component", "config").Str("value", glyphs).
			Msgf("Invalid value for CONNECT4_GLYPHS, using default: %s", GlyphsEmoji)
		glyphs = GlyphsEmoji
	}

	return &Config{
		Color:    color,
		Glyphs:   glyphs,
		LogLevel: GetEnv("CONNECT4_LOG_LEVEL", "warn"),
		LogFile:  GetEnv("CONNECT4_LOG_FILE", ""),
	}
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Warn().Str("component", "config").Str("key", key).Str("value", valueStr).
			Msgf("Invalid boolean value, using default: %t", defaultValue)
		return defaultValue
	}
	return value
}
