package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openmediahub/mediashelf/pkg/mediashelf"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the shelf version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("shelf", mediashelf.Version)
	},
}
