package config

import (
	"os"
	"strings"
)

// Config captures process level configuration for the prime tools.
type Config struct {
	Strategy  string
	LogLevel  string
	LogFormat string
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	strategy := os.Getenv("PRIMEFINDER_STRATEGY")
	if strategy == "" {
		strategy = "known-primes"
	}

	level := strings.ToLower(os.Getenv("PRIMEFINDER_LOG_LEVEL"))
	if level == "" {
		level = "info"
	}

	format := strings.ToLower(os.Getenv("PRIMEFINDER_LOG_FORMAT"))
	if format != "json" {
		format = "text"
	}

	return Config{
		Strategy:  strategy,
		LogLevel:  level,
		LogFormat: format,
	}
}
