// Package server wires the record store: it opens the database, applies
// migrations and serves the employee table over gRPC until a shutdown
// signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/rosterkeeper/internal/dbx"
	"github.com/dmitrijs2005/rosterkeeper/internal/logging"
	"github.com/dmitrijs2005/rosterkeeper/internal/server/config"
	"github.com/dmitrijs2005/rosterkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/rosterkeeper/internal/server/services"

	gs "github.com/dmitrijs2005/rosterkeeper/internal/server/grpc"
)

// runner is what App needs from the transport.
type runner interface {
	Run(ctx context.Context) error
}

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server runner
}

// openDB and newManager are seams for tests.
var (
	openDB     = dbx.Open
	newManager = func(d dbx.Dialect) repomanager.RepositoryManager { return repomanager.NewSQLRepositoryManager(d) }
)

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.New(os.Stdout, logging.FormatJSON, c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	db, dialect, err := openDB(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	m := newManager(dialect)
	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	es := services.NewEmployeeService(db, m)
	s := gs.NewGRPCServer(c.EndpointAddrGRPC, logger, es)

	return &App{config: c, logger: logger, db: db, server: s}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// closes the database.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "address", app.config.EndpointAddrGRPC)

	app.initSignalHandler(cancelFunc)

	err := app.server.Run(ctx)
	if err != nil {
		app.logger.Error(ctx, "gRPC server failed", "error", err)
	}

	if cerr := app.db.Close(); cerr != nil {
		app.logger.Error(ctx, "Error closing database", "error", cerr)
	}

	app.logger.Info(ctx, "App stopped")
	return err
}
