package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/rosterkeeper/internal/flagx"
)

// JsonConfig mirrors Config for unmarshalling. Empty fields leave the
// current value untouched.
type JsonConfig struct {
	EndpointAddrGRPC string `json:"endpoint_addr_grpc"`
	DatabaseDSN      string `json:"database_dsn"`
	LogLevel         string `json:"log_level"`
}

// parseJson overlays values from the file named by -c / -config (or
// $ROSTER_CONFIG). A missing or malformed file panics.
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

	if c.EndpointAddrGRPC != "" {
		config.EndpointAddrGRPC = c.EndpointAddrGRPC
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
}
