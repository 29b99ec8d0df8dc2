// Package config provides configuration management for the nameforge CLI.
package config

import "github.com/nameforge-dev/nameforge/internal/version"

// Version returns the current nameforge CLI version from the centralized version package
var Version = version.NameforgeVersion

// Global holds the global CLI configuration
var Global struct {
	LogLevel  string // Log level for CLI operations
	Verbose   bool   // Show verbose output
	Output    string // Output format: table, json
	CachePath string // Availability cache file path override
}

// Generate holds the generate command configuration
var Generate struct {
	Max      int  // Maximum number of suggestions to return
	MinScore int  // Quality floor for suggestions
	ByGrade  bool // Group output into grade tiers
}

// Check holds the check command configuration
var Check struct {
	TLDs    []string // TLD suffixes to expand each name against
	Quick   bool     // Faster preset: shorter timeouts, fewer retries
	NoCache bool     // Bypass cached verdicts for this run
}

// Hunt holds the hunt command configuration
var Hunt struct {
	TLDs     []string // TLD suffixes to expand each suggestion against
	Max      int      // Maximum suggestions to generate before checking
	MinScore int      // Quality floor for generated suggestions
	Quick    bool     // Faster preset for both generation and checking
}
