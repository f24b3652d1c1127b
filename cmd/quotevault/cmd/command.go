// Package cmd implements the quotevault CLI command tree.
package cmd

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ifeomasylviadike/quotevault"
)

// AppContext is the slice of the application the commands need.
// The app package implements it; defining it here keeps the
// dependency direction app -> cmd.
type AppContext interface {
	// Client returns the lazily constructed quotevault client.
	Client() (quotevault.Client, error)

	// Logger returns the application logger.
	Logger() *zerolog.Logger

	// RequireRemote fails when no remote is configured.
	RequireRemote() error
}

// Register attaches all quotevault commands to the root command.
func Register(root *cobra.Command, app AppContext) {
	root.AddCommand(
		newSyncCommand(app),
		newWatchCommand(app),
		newListCommand(app),
		newAddCommand(app),
		newImportCommand(app),
		newConflictsCommand(app),
	)
}
