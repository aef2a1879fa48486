// Package config handles configuration for the AuditKeeper CLI,
// including defaults, environment overlay, and command-line flags.
package config

// Config holds runtime settings for the AuditKeeper CLI.
//
// Fields:
//   - ServerAddr: base URL of the backend HTTP API.
type Config struct {
	ServerAddr string `envconfig:"SERVER_ADDR"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerAddr = "http://localhost:8000"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// environment variables and command-line flags. Later sources take precedence
// over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
