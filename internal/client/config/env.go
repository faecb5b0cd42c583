package config

import (
	"os"
	"time"
)

// Environment variables recognized by the client.
const (
	envAPIBaseURL     = "EXPENSIFY_API_URL"
	envDatabaseFile   = "EXPENSIFY_DB"
	envRequestTimeout = "EXPENSIFY_REQUEST_TIMEOUT"
)

// parseEnv overlays Config with values from the process environment.
// Unset or malformed variables leave the current value untouched.
func parseEnv(cfg *Config) {
	if v := os.Getenv(envAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(envDatabaseFile); v != "" {
		cfg.DatabaseFile = v
	}
	if v := os.Getenv(envRequestTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
}
