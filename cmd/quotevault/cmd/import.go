package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ifeomasylviadike/quotevault/pkg/errors"
	"github.com/ifeomasylviadike/quotevault/pkg/quotes"
)

// newImportCommand creates the import command.
func newImportCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Bulk-import quotes from a JSON file",
		Long: `Import reads a JSON array of quotes and admits each item that has
non-empty text and category. Invalid items are skipped silently; the
count of accepted items is reported.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.WrapIO("read", args[0], err)
			}

			var recs []quotes.Record
			if err := json.Unmarshal(data, &recs); err != nil {
				return errors.WrapParse("json", args[0], err)
			}

			accepted, err := quotes.Import(client.Store(), recs)
			if err != nil {
				return err
			}

			fmt.Fprintf(c.OutOrStdout(), "Imported %d of %d quotes\n", accepted, len(recs))
			return nil
		},
	}
}
