package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the UFood CLI.
//
// Fields:
//   - APIBaseURL: root URL of the UFood REST API.
//   - RequestTimeout: per-request HTTP timeout.
//   - TokenTTL: how long a stored token is kept when it has no readable expiry.
//   - DataDir: directory for local state; "~" is expanded.
//   - DatabasePath: SQLite file, relative paths resolve against DataDir.
//   - LogLevel: debug, info, warn or error.
//   - RateLimit: outgoing requests per second, 0 means unlimited.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	TokenTTL       time.Duration
	DataDir        string
	DatabasePath   string
	LogLevel       string
	RateLimit      float64
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://ufoodapi.herokuapp.com"
	c.RequestTimeout = 10 * time.Second
	c.TokenTTL = 24 * time.Hour
	c.DataDir = "~/.ufood"
	c.DatabasePath = "ufood.db"
	c.LogLevel = "warn"
	c.RateLimit = 0
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	return loadConfig(os.Args[1:])
}

func loadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
