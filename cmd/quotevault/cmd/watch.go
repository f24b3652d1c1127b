package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ifeomasylviadike/quotevault"
)

// newWatchCommand creates the watch command: interval-driven sync until
// interrupted.
func newWatchCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Sync on a fixed interval until interrupted",
		Args:  cobra.NoArgs,
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

			// Run one cycle up front; ticks handle the rest.
			if err := client.Sync(c.Context()); err != nil {
				app.Logger().Warn().Err(err).Msg("Initial sync failed")
			}
			if err := client.AutoSyncOn(); err != nil {
				return err
			}
			defer func() { _ = client.AutoSyncOff() }()

			<-c.Context().Done()
			return nil
		},
	}
}
