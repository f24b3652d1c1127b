package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ifeomasylviadike/quotevault/pkg/quotes"
)

// newAddCommand creates the add command.
func newAddCommand(app AppContext) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a quote to the local collection",
		Long: `Add creates a local-origin quote. It replicates to the remote on
the next sync cycle, acquiring a remote-assigned id on success.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			rec, err := quotes.New(args[0], category)
			if err != nil {
				return err
			}

			store := client.Store()
			if err := store.Set(rec); err != nil {
				return err
			}
			if err := store.Save(); err != nil {
				return err
			}

			fmt.Fprintf(c.OutOrStdout(), "Added %s\n", rec.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "category label (required)")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}
