package app

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ifeomasylviadike/quotevault/cmd/quotevault/cmd"
)

// Compile-time check that App satisfies the command tree's needs.
var _ cmd.AppContext = (*App)(nil)

// Execute runs the quotevault CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "quotevault",
		Short:   "Quote collection with remote sync",
		Version: a.version,
		Long: `Quotevault keeps a local quote collection consistent with a remote
source of record. Records created locally replicate outward on each
sync cycle; remote changes merge in with unconditional remote
precedence, and divergences queue as conflicts for manual resolution.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVar(&a.config.ConfigFile, "config", "", "config file (default is $HOME/.quotevault.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output (shortcut for LOG_LEVEL=debug)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "minimal output (shortcut for LOG_LEVEL=warn)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	rootCmd.SetVersionTemplate("quotevault {{.Version}}\n")

	// Register all commands
	cmd.Register(rootCmd, a)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(c *cobra.Command, _ []string) error {
	verbose, _ := c.Flags().GetBool("verbose")
	quiet, _ := c.Flags().GetBool("quiet")
	noColor, _ := c.Flags().GetBool("no-color")

	a.config.UpdateFromFlags(verbose, quiet, noColor)

	// Reconfigure logger with final flag values
	logger := NewLogger(a.config)
	a.logger = &logger
	return nil
}
