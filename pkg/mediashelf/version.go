// Package mediashelf exposes build metadata shared by the CLI and
// library consumers.
package mediashelf

// Version is the current mediashelf release.
const Version = "0.1.0"
