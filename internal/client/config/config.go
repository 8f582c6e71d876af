package config

import "github.com/dmitrijs2005/jobboard/internal/logging"

// Config holds runtime settings for the jobboard CLI.
//
// Fields:
//   - APIURL: base URL of the vacancy board REST API.
//   - APIKey: static key sent as x-api-key on every request.
//   - StorePath: SQLite file holding the persisted credential.
//   - LogLevel: debug, info, warn or error.
//   - LogBackend: slog or zap.
type Config struct {
	APIURL     string
	APIKey     string
	StorePath  string
	LogLevel   string
	LogBackend string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIURL = "http://localhost:3000"
	c.APIKey = ""
	c.StorePath = "jobboard.db"
	c.LogLevel = "info"
	c.LogBackend = logging.BackendSlog
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (optionally seeded from a .env file), JSON (if present) and
// command-line flags (if present). Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
