package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ifeomasylviadike/quotevault"
)

// newSyncCommand creates the sync command: one manual cycle.
func newSyncCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Run one sync cycle against the remote",
		Long: `Sync fetches the remote snapshot, merges it into the local
collection with remote precedence, and replicates locally created
quotes outward. Conflicts queue for manual resolution; see
"quotevault conflicts".`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			if err := app.RequireRemote(); err != nil {
				return err
			}
			client, err := app.Client()
			if err != nil {
				return err
			}

			client.OnNotification(func(n quotevault.Notification) {
				fmt.Fprintf(c.OutOrStdout(), "%s: %s\n", n.Kind, n.Message)
			})

			return client.Sync(c.Context())
		},
	}
}
