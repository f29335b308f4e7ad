package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var itemListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all items",
	Long: `List prints every item in the repository sorted by identifier.

Example:
  shelf item list
  shelf item list --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		items := repo.Items()

		if flagJSON {
			records := make([]map[string]string, len(items))
			for i, item := range items {
				records[i] = itemRecord(item)
			}
			out, err := json.MarshalIndent(records, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling items: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		if len(items) == 0 {
			fmt.Println("No items found.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "IDENTIFIER\tTITLE")
		for _, item := range items {
			fmt.Fprintf(w, "%s\t%s\n", item.Identifier(), item.Field("title"))
		}
		w.Flush()
		fmt.Printf("\nTotal: %d item(s)\n", len(items))
		return nil
	},
}

func init() {
	itemCmd.AddCommand(itemListCmd)
}
