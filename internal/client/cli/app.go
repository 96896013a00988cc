package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/virtualgarden/internal/client/client"
	"github.com/dmitrijs2005/virtualgarden/internal/client/config"
	"github.com/dmitrijs2005/virtualgarden/internal/client/repositories/session"
	"github.com/dmitrijs2005/virtualgarden/internal/client/services"
	"github.com/dmitrijs2005/virtualgarden/internal/garden"
	"github.com/dmitrijs2005/virtualgarden/internal/logging"
)

type App struct {
	auth   garden.Auth
	boot   *garden.Bootstrapper
	engine *garden.Engine
	clock  garden.Clock
	logger logging.Logger

	out    io.Writer
	reader *bufio.Reader

	// ticking is set for the REPL; one-shot commands never start the ticker.
	ticking  bool
	interval time.Duration
	closers  []io.Closer

	mu          sync.Mutex
	ctx         context.Context
	session     *garden.Session
	stopTicker  func()
	unsubscribe func()
}

// NewApp opens the session database and the server connection described by
// cfg. Call Close when done.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.NewTextLogger(os.Stderr, level)

	db, err := client.InitDatabase(ctx, cfg.SessionFile)
	if err != nil {
		return nil, fmt.Errorf("error initializing session database: %w", err)
	}

	rpc, err := client.NewGRPCClient(cfg.ServerEndpointAddr)
	if err != nil {
		db.Close()
		return nil, err
	}

	auth := services.NewAuthService(rpc, session.NewSQLiteRepository(db), logger)
	a := newApp(auth, rpc, garden.RealClock{}, logger, os.Stdin, os.Stdout)
	a.interval = cfg.TickInterval
	a.closers = []io.Closer{rpc, dbCloser{db}}
	return a, nil
}

type dbCloser struct{ db *sql.DB }

func (c dbCloser) Close() error { return c.db.Close() }

func newApp(auth garden.Auth, store garden.Store, clock garden.Clock, logger logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		auth:     auth,
		boot:     garden.NewBootstrapper(store, logger),
		engine:   garden.NewEngine(store, clock, logger),
		clock:    clock,
		logger:   logger.With("module", "cli"),
		out:      out,
		reader:   bufio.NewReader(in),
		interval: garden.DefaultTickInterval,
		ctx:      context.Background(),
	}
}

// Start restores the stored session, opens its garden and follows later
// sign-ins and sign-outs.
func (a *App) Start(ctx context.Context) error {
	a.mu.Lock()
	a.ctx = ctx
	a.mu.Unlock()

	s, err := a.auth.CurrentSession(ctx)
	if err != nil {
		return fmt.Errorf("error reading session: %w", err)
	}

	a.unsubscribe = a.auth.OnSessionChange(a.onSessionChange)
	if s != nil {
		a.onSessionChange(s)
	}
	return nil
}

// Close stops the ticker and releases the database and connection.
func (a *App) Close() error {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	a.closeGarden()

	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

func (a *App) onSessionChange(s *garden.Session) {
	a.closeGarden()

	a.mu.Lock()
	a.session = s
	ctx := a.ctx
	a.mu.Unlock()

	if s != nil {
		a.openGarden(ctx, s.UserID)
	}
}

// openGarden bootstraps and loads the user's garden. On failure the garden
// stays unset and plant commands are refused.
func (a *App) openGarden(ctx context.Context, userID string) {
	a.println("Opening your garden...")

	gardenID, err := a.boot.EnsureGarden(ctx, userID)
	if err != nil {
		a.println("Could not open your garden right now.")
		return
	}
	if _, err := a.engine.Load(ctx, gardenID); err != nil {
		a.println("Could not load your plants right now.")
		return
	}

	if a.ticking {
		stop := a.engine.Start(ctx, a.interval)
		a.mu.Lock()
		a.stopTicker = stop
		a.mu.Unlock()
	}
}

func (a *App) closeGarden() {
	a.mu.Lock()
	stop := a.stopTicker
	a.stopTicker = nil
	a.mu.Unlock()

	if stop != nil {
		stop()
	}
	a.engine.Reset()
}

func (a *App) currentSession() *garden.Session {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session
}

func (a *App) isLoggedIn() bool {
	return a.currentSession() != nil
}

func (a *App) hasGarden() bool {
	return a.engine.GardenID() != ""
}

func (a *App) getStatus() string {
	s := a.currentSession()
	if s == nil {
		return ""
	}
	if !a.hasGarden() {
		return fmt.Sprintf("(%s, no garden)", s.Email)
	}
	return fmt.Sprintf("(%s, %d plants)", s.Email, len(a.engine.Plants()))
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
