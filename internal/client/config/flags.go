package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/rosterkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-r", "-t", "-l", "-i"})

	fs := flag.NewFlagSet("cli", flag.ContinueOnError)

	fs.StringVar(&cfg.StoreEndpointAddr, "a", cfg.StoreEndpointAddr, "address and port of the record store")
	fs.StringVar(&cfg.RelayURL, "r", cfg.RelayURL, "email relay URL")
	relayTimeout := fs.Int("t", int(cfg.RelayTimeout.Seconds()), "relay timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RelayTimeout = time.Duration(*relayTimeout) * time.Second
	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
}
