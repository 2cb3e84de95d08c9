// Package config assembles the CLI's runtime settings from defaults, an
// optional .env file, an optional JSON file, and command-line flags, in that
// order — later sources win.
package config

import "time"

// Config holds runtime settings for the DocuChat CLI.
//
// Fields:
//   - GatewayURL: base URL of the DocuChat gateway.
//   - RequestTimeout: transport-level timeout applied to every request.
//   - TokenFile: path of the persisted session token; empty selects the
//     default location under the user config dir.
type Config struct {
	GatewayURL     string
	RequestTimeout time.Duration
	TokenFile      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.GatewayURL = "http://localhost:5000"
	c.RequestTimeout = 15 * time.Second
	c.TokenFile = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including a .env file if present), JSON (if provided via
// -c/-config), and command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
