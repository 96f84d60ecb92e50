package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config carries the runtime settings for the gateway and the CLI.
type Config struct {
	API     APIConfig
	Session SessionConfig
	Logging LoggingConfig
	Stream  StreamConfig
}

// APIConfig describes how to reach the PestLink backend.
type APIConfig struct {
	// BaseURL is the backend origin; the /api prefix is appended by the transport.
	BaseURL string
	// Timeout bounds every request end to end.
	Timeout time.Duration
}

// SessionConfig controls where the bearer token is persisted between runs.
type SessionConfig struct {
	TokenDir string
}

// LoggingConfig mirrors the shared logging package settings.
type LoggingConfig struct {
	Level  string
	Format string
}

// StreamConfig controls the live notification feed.
type StreamConfig struct {
	Enabled bool
}

// Load reads configuration from the environment, applying defaults that keep
// the client usable with nothing set.
func Load() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: envOr("PESTLINK_API_URL", "https://api.pestlink.app"),
			Timeout: envDuration("PESTLINK_TIMEOUT", 15*time.Second),
		},
		Session: SessionConfig{
			TokenDir: envOr("PESTLINK_TOKEN_DIR", defaultTokenDir()),
		},
		Logging: LoggingConfig{
			Level:  envOr("LOG_LEVEL", "info"),
			Format: envOr("LOG_FORMAT", "text"),
		},
		Stream: StreamConfig{
			Enabled: strings.EqualFold(envOr("PESTLINK_STREAM", "false"), "true"),
		},
	}
}

func envOr(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func defaultTokenDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pestlink"
	}
	return filepath.Join(home, ".pestlink")
}
