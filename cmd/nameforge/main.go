// Package main provides the entry point for the NameForge CLI tool (nameforge).
//
// This package implements the main executable for the name generation and
// domain availability CLI. It wires the command tree, flag configuration,
// and handler assignment into a single pipeline-oriented tool.
//
// CLI ARCHITECTURE:
//   - Command Structure: Pipeline-stage commands (generate, check, hunt, cache)
//   - Handler Integration: Command execution against the in-process pipeline
//   - Flag Management: Global and command-specific configuration options
//   - Configuration Binding: CLI state management and validation pipeline
//
// INITIALIZATION FLOW:
// 1. Command structure setup
// 2. Flag configuration for global and command-specific options
// 3. Handler assignment linking commands to pipeline operations
// 4. Configuration validation before any command runs
// 5. Command execution with proper error handling and exit codes
package main

import (
	"os"

	"github.com/nameforge-dev/nameforge/cmd/nameforge/commands"
	"github.com/nameforge-dev/nameforge/cmd/nameforge/config"
	"github.com/nameforge-dev/nameforge/cmd/nameforge/handlers"
	internalconfig "github.com/nameforge-dev/nameforge/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	// Get root command from commands package
	rootCmd := commands.RootCmd

	// Set version and validation
	rootCmd.Version = config.Version
	rootCmd.PersistentPreRunE = validateFlags

	// Setup all command structures
	commands.SetupCommands()
	commands.SetupCacheCommands()

	// Setup global flags
	commands.SetupGlobalFlags(rootCmd, &config.Global.LogLevel, &config.Global.Verbose,
		&config.Global.Output, &config.Global.CachePath)

	// Setup command-specific flags
	setupGenerateFlags(commands.GetGenerateCommand())
	setupCheckFlags(commands.GetCheckCommand())
	setupHuntFlags(commands.GetHuntCommand())

	// Setup command handlers
	setupCommandHandlers()
}

// validateFlags runs global then command-specific flag validation
func validateFlags(cmd *cobra.Command, args []string) error {
	if err := config.ValidateGlobalFlags(cmd, args); err != nil {
		return err
	}
	if err := config.ValidateTLDFlags(config.Check.TLDs); err != nil {
		return err
	}
	return config.ValidateTLDFlags(config.Hunt.TLDs)
}

// setupGenerateFlags configures flags for the generate command
func setupGenerateFlags(generateCmd *cobra.Command) {
	generateCmd.Flags().IntVar(&config.Generate.Max, "max", internalconfig.DefaultMaxSuggestions,
		"Maximum number of suggestions to return")
	generateCmd.Flags().IntVar(&config.Generate.MinScore, "min-score", internalconfig.DefaultMinScore,
		"Minimum quality score (0-100) for suggestions")
	generateCmd.Flags().BoolVar(&config.Generate.ByGrade, "by-grade", false,
		"Group suggestions into grade tiers (A/B/C)")
}

// setupCheckFlags configures flags for the check command
func setupCheckFlags(checkCmd *cobra.Command) {
	checkCmd.Flags().StringSliceVar(&config.Check.TLDs, "tlds", nil,
		"TLDs to check (default: .com,.io,.dev,.app,.co)")
	checkCmd.Flags().BoolVar(&config.Check.Quick, "quick", false,
		"Faster preset: shorter timeouts, fewer retries")
	checkCmd.Flags().BoolVar(&config.Check.NoCache, "no-cache", false,
		"Bypass cached verdicts for this run")
}

// setupHuntFlags configures flags for the hunt command
func setupHuntFlags(huntCmd *cobra.Command) {
	huntCmd.Flags().StringSliceVar(&config.Hunt.TLDs, "tlds", nil,
		"TLDs to check (default: .com,.io,.dev,.app,.co)")
	huntCmd.Flags().IntVar(&config.Hunt.Max, "max", internalconfig.DefaultMaxSuggestions,
		"Maximum number of suggestions to generate")
	huntCmd.Flags().IntVar(&config.Hunt.MinScore, "min-score", internalconfig.DefaultMinScore,
		"Minimum quality score (0-100) for suggestions")
	huntCmd.Flags().BoolVar(&config.Hunt.Quick, "quick", false,
		"Faster preset for both generation and checking")
}

// setupCommandHandlers assigns RunE functions to commands
func setupCommandHandlers() {
	commands.GetGenerateCommand().RunE = handlers.HandleGenerate
	commands.GetCheckCommand().RunE = handlers.HandleCheck
	commands.GetHuntCommand().RunE = handlers.HandleHunt

	cacheStatsCmd, cacheCleanupCmd, cacheClearCmd := commands.GetCacheCommands()
	cacheStatsCmd.RunE = handlers.HandleCacheStats
	cacheCleanupCmd.RunE = handlers.HandleCacheCleanup
	cacheClearCmd.RunE = handlers.HandleCacheClear
}

// main is the main entry point
func main() {
	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
