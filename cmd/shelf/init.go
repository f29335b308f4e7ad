package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration and storage",
	Long: `Init creates the configuration directory with a commented default
config file, opens the snapshot backend and writes initial snapshots.
Running it on an existing installation is safe and changes nothing.

Example:
  shelf init
  shelf init --data-dir /srv/shelf`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(exitSysError)
		}
		dataDir, err := resolveDataDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(exitSysError)
		}

		if err := repo.Dump(); err != nil {
			fmt.Fprintln(os.Stderr, "Error: writing repository snapshot:", err)
			os.Exit(exitSysError)
		}
		if err := accounts.Dump(); err != nil {
			fmt.Fprintln(os.Stderr, "Error: writing accounts snapshot:", err)
			os.Exit(exitSysError)
		}
		shellLog.Infof("initialized with %d item(s), %d account(s)", repo.Len(), accounts.Len())

		fmt.Println("Shelf initialized.")
		fmt.Println("  Config:", configDir)
		fmt.Println("  Data:  ", dataDir)
		return nil
	},
}
