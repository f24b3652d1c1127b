package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// newListCommand creates the list command.
func newListCommand(app AppContext) *cobra.Command {
	var category string
	var showCategories bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List quotes, optionally filtered by category",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}
			store := client.Store()

			if showCategories {
				for _, cat := range store.Categories() {
					fmt.Fprintln(c.OutOrStdout(), cat)
				}
				return nil
			}

			recs := store.List()
			if category != "" {
				recs = store.ListByCategory(category)
			}

			w := tabwriter.NewWriter(c.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCATEGORY\tORIGIN\tTEXT")
			for _, rec := range recs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", rec.ID, rec.Category, rec.Origin, rec.Text)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "filter by category")
	cmd.Flags().BoolVar(&showCategories, "categories", false, "list distinct categories instead of quotes")
	return cmd
}
