// Package commands provides the complete command tree implementation for nameforge.
//
// This package defines the command structure for the NameForge CLI tool.
// Commands map directly onto pipeline stages so each can run standalone or
// be composed through the hunt command.
//
// COMMAND STRUCTURE:
//   - generate: Turn a project description into scored name suggestions
//   - check: Check domain availability for explicit names across TLDs
//   - hunt: Full pipeline, generate then check in one run
//   - cache: Availability cache inspection and maintenance (stats, cleanup, clear)
//
// All commands follow consistent patterns with standardized flag handling,
// error messages, and output formatting.
package commands

import (
	"github.com/spf13/cobra"
)

// Root command
var RootCmd = &cobra.Command{
	Use:   "nameforge",
	Short: "CLI tool for generating brandable project names and checking domain availability",
	Long: `NameForge CLI (nameforge) generates brandable name suggestions from a
short project description, scores them for pronounceability and brand
quality, and checks domain availability across TLDs via RDAP and WHOIS.

Verdicts are cached on disk so repeated checks inside the trust window
cost no network traffic.`,
	SilenceUsage: true,
	Example: `  # Generate name suggestions for a project
  nameforge generate "AI-powered task manager for teams"

  # Generate more suggestions grouped by grade
  nameforge generate --by-grade "collaborative code review platform"

  # Check specific names against the default TLD list
  nameforge check taskify workhub

  # Check against specific TLDs
  nameforge check --tlds=.com,.io taskify

  # Full pipeline: generate and check in one run
  nameforge hunt "realtime analytics dashboard"

  # Inspect the availability cache
  nameforge cache stats

  # Output in JSON format
  nameforge -o json generate "fitness tracking app"`,
}

// SetupCommands initializes all commands and their relationships
func SetupCommands() {
	RootCmd.AddCommand(generateCmd)
	RootCmd.AddCommand(checkCmd)
	RootCmd.AddCommand(huntCmd)
	RootCmd.AddCommand(cacheCmd)
}

// SetupGlobalFlags configures all global persistent flags
func SetupGlobalFlags(rootCmd *cobra.Command, logLevelPtr *string, verbosePtr *bool,
	outputPtr *string, cachePathPtr *string) {
	rootCmd.PersistentFlags().StringVar(logLevelPtr, "log-level", "ERROR",
		"Log level: DEBUG, INFO, WARN, ERROR")
	rootCmd.PersistentFlags().BoolVarP(verbosePtr, "verbose", "v", false,
		"Show verbose output")
	rootCmd.PersistentFlags().StringVarP(outputPtr, "output", "o", "table",
		"Output format: table, json")
	rootCmd.PersistentFlags().StringVar(cachePathPtr, "cache-path", "",
		"Availability cache file path (default: user cache directory)")
}
