package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List the metadata schema",
	Long: `Fields prints the metadata fields items can carry. The schema is
Dublin Core unless config.yaml overrides it.

Example:
  shelf fields
  shelf fields --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagJSON {
			out, err := json.MarshalIndent(schema.Fields(), "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling fields: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "FIELD\tDESCRIPTION")
		for _, f := range schema.Fields() {
			fmt.Fprintf(w, "%s\t%s\n", f.Name, f.Description)
		}
		w.Flush()
		fmt.Printf("\nTotal: %d field(s)\n", schema.Len())
		return nil
	},
}
