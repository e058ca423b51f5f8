package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/rosterkeeper/internal/flagx"
	"github.com/dmitrijs2005/rosterkeeper/internal/timex"
)

// JsonConfig is the on-disk shape of Config. Durations accept "10s" or
// integer nanoseconds.
type JsonConfig struct {
	ListenAddr      string         `json:"listen_addr"`
	WebhookURL      string         `json:"webhook_url"`
	WebhookUser     string         `json:"webhook_user"`
	WebhookPassword string         `json:"webhook_password"`
	ForwardTimeout  timex.Duration `json:"forward_timeout"`
	AllowedOrigin   string         `json:"allowed_origin"`
	LogLevel        string         `json:"log_level"`
}

// parseJson overlays config with the non-empty values of the JSON file
// named by -c / -config or $ROSTER_CONFIG. Panics on read or parse errors.
func parseJson(config *Config) {
	path := flagx.ConfigFile()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setIf(&config.ListenAddr, c.ListenAddr)
	setIf(&config.WebhookURL, c.WebhookURL)
	setIf(&config.WebhookUser, c.WebhookUser)
	setIf(&config.WebhookPassword, c.WebhookPassword)
	setIf(&config.AllowedOrigin, c.AllowedOrigin)
	setIf(&config.LogLevel, c.LogLevel)
	if c.ForwardTimeout.Duration > 0 {
		config.ForwardTimeout = c.ForwardTimeout.Duration
	}
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
