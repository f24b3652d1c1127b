package cmd

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ifeomasylviadike/quotevault/pkg/conflicts"
	"github.com/ifeomasylviadike/quotevault/pkg/errors"
)

// newConflictsCommand creates the conflicts command group.
func newConflictsCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conflicts",
		Short: "Inspect and resolve pending sync conflicts",
	}
	cmd.AddCommand(
		newConflictsListCommand(app),
		newConflictsResolveCommand(app),
	)
	return cmd
}

// newConflictsListCommand lists pending conflict entries.
func newConflictsListCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List pending conflicts",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			entries := client.Ledger().Pending()
			if len(entries) == 0 {
				fmt.Fprintln(c.OutOrStdout(), "No pending conflicts")
				return nil
			}

			w := tabwriter.NewWriter(c.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "INDEX\tID\tLOCAL\tREMOTE\tDETECTED")
			for i, e := range entries {
				fmt.Fprintf(w, "%d\t%s\t%s [%s]\t%s [%s]\t%s\n",
					i, e.ID,
					e.Local.Text, e.Local.Category,
					e.Remote.Text, e.Remote.Category,
					e.DetectedAt.Format("2006-01-02 15:04:05"))
			}
			return w.Flush()
		},
	}
}

// newConflictsResolveCommand resolves one pending conflict by index.
func newConflictsResolveCommand(app AppContext) *cobra.Command {
	var keep string

	cmd := &cobra.Command{
		Use:   "resolve <index>",
		Short: "Resolve a pending conflict",
		Long: `Resolve applies a manual resolution to the conflict at the given
index (as shown by "conflicts list"). Keeping the remote version only
removes the entry; keeping the local version restores the snapshotted
local quote into the collection.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			index, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.NewValidationError("index", args[0], "must be an integer")
			}

			var choice conflicts.Choice
			switch keep {
			case "local":
				choice = conflicts.KeepLocal
			case "remote":
				choice = conflicts.KeepRemote
			default:
				return errors.NewValidationError("keep", keep, "must be local or remote")
			}

			if err := client.ResolveConflict(index, choice); err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "Resolved conflict %d (%s)\n", index, choice)
			return nil
		},
	}

	cmd.Flags().StringVar(&keep, "keep", "", "which version to keep: local or remote (required)")
	_ = cmd.MarkFlagRequired("keep")
	return cmd
}
