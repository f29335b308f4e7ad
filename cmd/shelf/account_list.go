package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var accountListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered contributors",
	Long: `List prints every registered account sorted by address.

Example:
  shelf account list
  shelf account list --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries := accounts.Entries()

		if flagJSON {
			out, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling accounts: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		if len(entries) == 0 {
			fmt.Println("No accounts registered.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ADDRESS\tNAME")
		for _, entry := range entries {
			fmt.Fprintf(w, "%s\t%s\n", entry.Address, entry.Name)
		}
		w.Flush()
		fmt.Printf("\nTotal: %d account(s)\n", len(entries))
		return nil
	},
}

func init() {
	accountCmd.AddCommand(accountListCmd)
}
