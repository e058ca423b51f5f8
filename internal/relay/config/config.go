// Package config handles configuration for the email relay, including
// defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the email relay.
//
// Fields:
//   - ListenAddr: bind address of the HTTP endpoint.
//   - WebhookURL: automation webhook the payload is forwarded to.
//   - WebhookUser / WebhookPassword: HTTP Basic credentials for the webhook;
//     no Authorization header is sent when WebhookUser is empty.
//   - ForwardTimeout: upper bound for one forward.
//   - AllowedOrigin: value of Access-Control-Allow-Origin.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ListenAddr      string
	WebhookURL      string
	WebhookUser     string
	WebhookPassword string
	ForwardTimeout  time.Duration
	AllowedOrigin   string
	LogLevel        string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.ListenAddr = ":8787"
	c.WebhookURL = "http://localhost:5678/webhook/send-employee-email"
	c.ForwardTimeout = 10 * time.Second
	c.AllowedOrigin = "*"
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
