package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/ufood/internal/client/client"
	"github.com/dmitrijs2005/ufood/internal/client/config"
	"github.com/dmitrijs2005/ufood/internal/client/services"
	"github.com/dmitrijs2005/ufood/internal/client/session"
	"github.com/dmitrijs2005/ufood/internal/filex"
	"github.com/dmitrijs2005/ufood/internal/logging"
	"github.com/dmitrijs2005/ufood/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// pageSize is the number of rows requested by listing commands.
const pageSize = 10

type App struct {
	config      *config.Config
	api         client.Client
	authService services.AuthService
	session     *session.Session
	metrics     prometheus.Gatherer
	log         logging.Logger
	db          *sql.DB
	reader      *bufio.Reader
	out         io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	logger := logging.New(c.LogLevel, os.Stderr)

	dbPath, err := filex.ResolveFile(c.DataDir, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}

	db, err := client.InitDatabase(ctx, dbPath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", dbPath, "error", err)
		return nil, err
	}

	reg := prometheus.NewRegistry()
	sess := session.New()

	api := client.NewHTTPClient(c.APIBaseURL, sess, client.Options{
		Timeout:   c.RequestTimeout,
		RateLimit: c.RateLimit,
		Logger:    logger,
		Metrics:   metrics.NewCollector(reg),
	})

	as := services.NewAuthService(api, sess, db, services.Options{
		TokenTTL: c.TokenTTL,
		Logger:   logger,
	})

	return &App{
		config:      c,
		api:         api,
		authService: as,
		session:     sess,
		metrics:     reg,
		log:         logger,
		db:          db,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session != nil && a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return "(guest)"
	}
	if p := a.session.Profile(); p != nil && p.Name != "" {
		return fmt.Sprintf("(%s)", clean(p.Name))
	}
	return "(logged in)"
}

// restore brings back the session saved by an earlier run, if any.
func (a *App) restore(ctx context.Context) {
	u, err := a.authService.Restore(ctx)
	switch {
	case errors.Is(err, client.ErrLocalDataNotAvailable):
		return
	case err != nil:
		a.log.Warn(ctx, "session not restored", "error", err)
		return
	case u != nil:
		fmt.Fprintf(a.out, "Welcome back, %s\n", clean(u.Name))
	}
}

// Run restores a saved session and blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to UFood CLI (type 'help' for commands)")
	a.restore(ctx)
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}
