package config

import "time"

// Config holds runtime settings for the Expensify desktop client.
//
// Fields:
//   - APIBaseURL: root of the backend REST API, including the /api prefix.
//   - DatabaseFile: path of the local SQLite file (credential + history).
//   - RequestTimeout: per-request HTTP timeout; zero keeps the transport default.
type Config struct {
	APIBaseURL     string
	DatabaseFile   string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.DatabaseFile = "expensify.db"
	c.RequestTimeout = 0
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, a JSON file (if present), and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
