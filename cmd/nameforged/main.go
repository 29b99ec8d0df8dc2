// Package main implements the NameForge daemon (nameforged).
// NameForge serves brandable name generation, quality scoring, and domain
// availability checking over a REST API backed by a persistent verdict cache.
package main

import (
	"os"

	"github.com/nameforge-dev/nameforge/cmd/nameforged/commands"
)

// Main entry point
func main() {
	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
