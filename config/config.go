// Package config loads runtime settings from the environment. The
// game takes no CLI flags; a .env file next to the binary (or real
// environment variables) tunes the few knobs that exist.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the full runtime configuration.
type Config struct {
	TargetFPS   int
	StartPaused bool
	Audio       bool
	Debug       bool
}

const (
	minFPS = 1
	maxFPS = 240
)

// Load reads .env if present and assembles the configuration. A
// missing .env file is not an error.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		TargetFPS:   getEnvInt("ECONOGENESIS_FPS", 30),
		StartPaused: getEnvBool("ECONOGENESIS_START_PAUSED", true),
		Audio:       getEnvBool("ECONOGENESIS_AUDIO", true),
		Debug:       getEnvBool("ECONOGENESIS_DEBUG", false),
	}

	if cfg.TargetFPS < minFPS {
		cfg.TargetFPS = minFPS
	}
	if cfg.TargetFPS > maxFPS {
		cfg.TargetFPS = maxFPS
	}
	return cfg
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
