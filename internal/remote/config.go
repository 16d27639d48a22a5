package remote

import (
	"os"
	"strconv"
)

// Config holds configuration for the remote document store client.
type Config struct {
	Enabled    bool
	LogCalls   bool
	Endpoint   string
	Token      string
	TimeoutMs  int
	MaxRetries int
}

// DefaultConfig returns a Config with sensible defaults. The remote tier
// is disabled until an endpoint is configured; the tool then runs purely
// off the local cache.
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		LogCalls:   false,
		Endpoint:   "",
		TimeoutMs:  8000,
		MaxRetries: 1,
	}
}

// LoadConfig reads remote store configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("GISU_REMOTE_ENDPOINT"); v != "" {
		cfg.Endpoint = v
		cfg.Enabled = true
	}
	if v := os.Getenv("GISU_REMOTE_TOKEN"); v != "" {
		cfg.Token = v
	}
	if v := os.Getenv("GISU_REMOTE_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("GISU_REMOTE_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("GISU_REMOTE_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	return cfg
}
