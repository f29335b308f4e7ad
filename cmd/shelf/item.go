package main

import (
	"github.com/spf13/cobra"
)

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage repository items",
	Long:  `Item groups the commands that add, inspect and list media items.`,
}
