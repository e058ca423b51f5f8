// Package config loads runtime configuration for the roster CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via -c / -config or
//     $ROSTER_CONFIG.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the record store gRPC endpoint
//	-r string   URL of the email relay endpoint
//	-t int      relay call timeout (seconds)
//	-l string   log level
//	-i int      online check interval (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so it can be either a
// string like "10s" or integer nanoseconds:
//
//	{
//	  "store_endpoint_addr": "127.0.0.1:50051",
//	  "relay_url": "http://127.0.0.1:8787/send-employee-email",
//	  "relay_timeout": "10s",
//	  "log_level": "info",
//	  "online_check_interval": "3s"
//	}
package config
