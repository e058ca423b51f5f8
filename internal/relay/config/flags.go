package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/rosterkeeper/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string   listen address (e.g., ":8787")
//	-w string   webhook URL
//	-u string   webhook basic-auth user
//	-p string   webhook basic-auth password
//	-t int      forward timeout, seconds
//	-o string   allowed CORS origin
//	-l string   log level
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-w", "-u", "-p", "-t", "-o", "-l"})

	fs := flag.NewFlagSet("relay", flag.ContinueOnError)

	fs.StringVar(&config.ListenAddr, "a", config.ListenAddr, "address and port to listen on")
	fs.StringVar(&config.WebhookURL, "w", config.WebhookURL, "automation webhook URL")
	fs.StringVar(&config.WebhookUser, "u", config.WebhookUser, "webhook basic-auth user")
	fs.StringVar(&config.WebhookPassword, "p", config.WebhookPassword, "webhook basic-auth password")
	timeout := fs.Int("t", int(config.ForwardTimeout.Seconds()), "forward timeout (in seconds)")
	fs.StringVar(&config.AllowedOrigin, "o", config.AllowedOrigin, "allowed CORS origin")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.ForwardTimeout = time.Duration(*timeout) * time.Second
}
