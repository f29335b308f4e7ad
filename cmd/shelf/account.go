package main

import (
	"github.com/spf13/cobra"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage contributor accounts",
	Long:  `Account groups the commands that register and list contributors.`,
}
