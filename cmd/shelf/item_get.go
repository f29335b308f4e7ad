package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var itemGetCmd = &cobra.Command{
	Use:   "get IDENTIFIER",
	Short: "Show one item",
	Long: `Get prints the metadata of a single item, one field per line in
schema order. Unset fields print empty.

Example:
  shelf item get 9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08
  shelf item get notes2024 --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		item, ok := repo.Lookup(args[0])
		if !ok {
			return fmt.Errorf("item %q not found", args[0])
		}
		if flagJSON {
			return printItemJSON(item)
		}
		printItemText(item)
		return nil
	},
}

func init() {
	itemCmd.AddCommand(itemGetCmd)
}
