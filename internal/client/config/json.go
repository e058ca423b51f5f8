package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/rosterkeeper/internal/flagx"
	"github.com/dmitrijs2005/rosterkeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	StoreEndpointAddr string         `json:"store_endpoint_addr"`
	RelayURL          string         `json:"relay_url"`
	RelayTimeout      timex.Duration `json:"relay_timeout"`
	LogLevel          string         `json:"log_level"`

	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
}

// parseJson overlays cfg with the non-empty values of the JSON config file.
// Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
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

	if c.StoreEndpointAddr != "" {
		cfg.StoreEndpointAddr = c.StoreEndpointAddr
	}
	if c.RelayURL != "" {
		cfg.RelayURL = c.RelayURL
	}
	if c.RelayTimeout.Duration > 0 {
		cfg.RelayTimeout = c.RelayTimeout.Duration
	}
	if c.LogLevel != "" {
		cfg.LogLevel = c.LogLevel
	}
	if c.OnlineCheckInterval.Duration > 0 {
		cfg.OnlineCheckInterval = c.OnlineCheckInterval.Duration
	}
}
