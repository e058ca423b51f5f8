package config

import "time"

// Config holds runtime settings for the roster CLI.
type Config struct {
	StoreEndpointAddr string
	RelayURL          string
	RelayTimeout      time.Duration
	LogLevel          string

	// OnlineCheckInterval is how often the CLI pings the store to show
	// online/offline in the prompt.
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.StoreEndpointAddr = "127.0.0.1:50051"
	c.RelayURL = "http://127.0.0.1:8787/send-employee-email"
	c.RelayTimeout = 10 * time.Second
	c.LogLevel = "info"
	c.OnlineCheckInterval = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
