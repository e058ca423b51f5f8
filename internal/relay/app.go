// Package relay is the email relay: an HTTP endpoint that validates an
// employee notification payload and forwards it to the automation webhook.
package relay

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/rosterkeeper/internal/logging"
	"github.com/dmitrijs2005/rosterkeeper/internal/relay/config"
)

type runner interface {
	Run(ctx context.Context) error
}

type App struct {
	config *config.Config
	logger logging.Logger
	server runner
}

func NewApp(c *config.Config) (*App, error) {
	logger, err := logging.New(os.Stdout, logging.FormatJSON, c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	v, err := NewPayloadValidator()
	if err != nil {
		return nil, err
	}

	f := NewForwarder(c.WebhookURL, c.WebhookUser, c.WebhookPassword, c.ForwardTimeout)
	s := NewServer(c.ListenAddr, c.AllowedOrigin, v, f, logger)

	return &App{config: c, logger: logger, server: s}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting relay...", "address", app.config.ListenAddr, "webhook", app.config.WebhookURL)

	app.initSignalHandler(cancelFunc)

	err := app.server.Run(ctx)
	if err != nil {
		app.logger.Error(ctx, "HTTP server failed", "error", err)
	}

	app.logger.Info(ctx, "Relay stopped")
	return err
}
