package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var accountAddCmd = &cobra.Command{
	Use:   "add ADDRESS",
	Short: "Register a contributor",
	Long: `Add registers a contributor account and persists the registry
immediately. The argument is either a bare address or a display form
with the name quoted in front of the angle-bracketed address. An
address can only be registered once.

Example:
  shelf account add bob@example.com
  shelf account add '"Bob" <bob@example.com>'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := accounts.Add(args[0]); err != nil {
			return fmt.Errorf("registering account: %w", err)
		}
		if err := accounts.Dump(); err != nil {
			return fmt.Errorf("persisting accounts: %w", err)
		}
		shellLog.Infof("registered account (%d total)", accounts.Len())

		fmt.Println("Account registered.")
		return nil
	},
}

func init() {
	accountCmd.AddCommand(accountAddCmd)
}
