// Command shelf manages a content-addressed media metadata repository
// from the command line. Items are identified by the digest of their
// media content, carry Dublin Core metadata by default, and survive
// restarts through snapshots written by a pluggable storage backend.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitUserError)
	}
}
