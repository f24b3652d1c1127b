// Package app provides the application context and dependency management
// for the quotevault CLI. It centralizes configuration, logging, and
// client construction for the command tree.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ifeomasylviadike/quotevault"
	"github.com/ifeomasylviadike/quotevault/pkg/errors"
)

// App represents the quotevault application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Client instance (lazy-initialized, singleton)
	mu     sync.Mutex
	client quotevault.Client
}

// New creates a new App instance with the given version information.
func New(version, commit, date string) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Client returns the quotevault client, creating it lazily if needed.
func (a *App) Client() (quotevault.Client, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.client != nil {
		return a.client, nil
	}

	store, err := quotevault.NewFilesStore(a.config.StorePath)
	if err != nil {
		return nil, err
	}

	// The ledger lives next to the quotes file so conflicts detected by
	// one invocation stay pending for the next.
	ledgerPath := filepath.Join(filepath.Dir(a.config.StorePath), "conflicts.yaml")

	opts := []quotevault.Option{
		quotevault.WithStore(store),
		quotevault.WithLedgerPath(ledgerPath),
		quotevault.WithSyncInterval(a.config.SyncInterval),
	}
	if a.config.RemoteURL != "" {
		opts = append(opts, quotevault.WithRemote(a.config.RemoteURL, a.config.RemoteAPIKey))
	}

	client, err := quotevault.New(opts...)
	if err != nil {
		return nil, err
	}
	a.client = client
	return client, nil
}

// RequireRemote fails with a configuration hint when no remote is set.
func (a *App) RequireRemote() error {
	if a.config.RemoteURL == "" {
		return errors.NewValidationError("remote_url", "",
			"no remote configured (set remote_url in ~/.quotevault.yaml or QUOTEVAULT_REMOTE_URL)")
	}
	return nil
}

// ExitOnError prints an error to stderr and exits non-zero.
func ExitOnError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
