package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/rosterkeeper/internal/client/client"
	"github.com/dmitrijs2005/rosterkeeper/internal/client/config"
	"github.com/dmitrijs2005/rosterkeeper/internal/client/roster"
	"github.com/dmitrijs2005/rosterkeeper/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// storeClient is the record store plus the connection management the CLI
// needs on top of what the roster core uses.
type storeClient interface {
	roster.Store
	Ping(ctx context.Context) error
	Close() error
}

type App struct {
	config     *config.Config
	logger     logging.Logger
	store      storeClient
	session    *roster.Session
	collection *roster.Controller
	dispatcher *roster.Dispatcher

	reader *bufio.Reader
	out    *printer

	modeMu sync.Mutex
	mode   Mode

	// inflight tracks goroutines started by commands so exit can wait.
	inflight sync.WaitGroup
}

func NewApp(c *config.Config) (*App, error) {
	logger, err := logging.New(os.Stderr, logging.FormatText, c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	store, err := client.NewStoreClient(c.StoreEndpointAddr)
	if err != nil {
		return nil, fmt.Errorf("store client init error: %w", err)
	}

	relay := client.NewRelayClient(c.RelayURL, c.RelayTimeout)

	return newApp(c, logger, store, relay, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, l logging.Logger, s storeClient, r roster.Relay, in io.Reader, w io.Writer) *App {
	out := newPrinter(w)
	session := roster.NewSession()

	return &App{
		config:     c,
		logger:     l,
		store:      s,
		session:    session,
		collection: roster.NewController(s, session, out, l),
		dispatcher: roster.NewDispatcher(r, out, l),
		reader:     bufio.NewReader(in),
		out:        out,
	}
}

// Run loads the roster, starts the connectivity watcher and blocks in the
// REPL until the operator exits.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer func() {
		if err := a.store.Close(); err != nil {
			a.logger.Error(ctx, "error closing store client", "error", err)
		}
	}()

	a.out.Println("Roster CLI (type 'help' for commands)")

	a.async(func() { _ = a.collection.Refresh(ctx) })

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader, a.out.Println)
}

// async runs fn on its own goroutine and tracks it for Wait.
func (a *App) async(fn func()) {
	a.inflight.Add(1)
	go func() {
		defer a.inflight.Done()
		fn()
	}()
}

// Wait blocks until every operation started by a command has settled.
func (a *App) Wait() {
	a.inflight.Wait()
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	if a.mode != mode {
		a.mode = mode
		a.logger.Info(ctx, "Switched mode", "mode", string(mode))
	}
}

func (a *App) Mode() Mode {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	return a.mode
}

// StartOnlineStatusWatcher pings the store every interval until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := a.store.Ping(pctx); err != nil {
		a.setMode(ctx, ModeOffline)
		return
	}
	a.setMode(ctx, ModeOnline)
}

// getStatus is the prompt suffix: connectivity, the open form and busy flags.
func (a *App) getStatus() string {
	s := string(a.Mode())

	if state, target := a.session.Current(); state == roster.SessionEditing {
		s = joinStatus(s, "editing "+target.Name)
	} else if state == roster.SessionCreating {
		s = joinStatus(s, "creating")
	}
	if a.collection.Loading() {
		s = joinStatus(s, "loading")
	}
	if a.collection.Submitting() {
		s = joinStatus(s, "saving")
	}
	if n := len(a.dispatcher.State().IDs()); n > 0 {
		s = joinStatus(s, fmt.Sprintf("sending %d", n))
	}

	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func joinStatus(s, part string) string {
	if s == "" {
		return part
	}
	return s + ", " + part
}
