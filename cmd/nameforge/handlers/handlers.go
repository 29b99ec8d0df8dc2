// Package handlers provides command handler functions for nameforge.
//
// This package contains the command execution logic for nameforge commands,
// organized by pipeline stage:
// - generate.go: Name suggestion generation and scoring
// - check.go: Domain availability checking for explicit names
// - hunt.go: Combined generate-then-check pipeline
// - cache.go: Availability cache inspection and maintenance
//
// All handlers follow consistent patterns:
// - cobra.Command RunE function signature for CLI integration
// - Standardized error handling and logging using the logging package
// - Consistent output formatting through the display package
// - Pipeline construction (cache, checker) shared through this file
package handlers

import (
	"github.com/nameforge-dev/nameforge/cmd/nameforge/config"
	"github.com/nameforge-dev/nameforge/internal/cache"
	"github.com/nameforge-dev/nameforge/internal/checker"
)

// openCache constructs the availability cache, honoring the --cache-path
// override. Every command that touches verdicts goes through this so CLI
// runs and repeated invocations share one snapshot.
func openCache() *cache.Cache {
	path := config.Global.CachePath
	if path == "" {
		path = cache.DefaultPath()
	}
	return cache.New(cache.Config{Path: path})
}

// newChecker constructs a checker over the given cache, applying the
// --quick preset when requested.
func newChecker(c *cache.Cache, quick bool) *checker.Checker {
	opts := checker.DefaultOptions()
	if quick {
		opts = checker.QuickOptions()
	}
	return checker.New(c, opts)
}
