package handlers

import (
	"github.com/nameforge-dev/nameforge/cmd/nameforge/display"
	"github.com/nameforge-dev/nameforge/internal/logging"
	"github.com/spf13/cobra"
)

// HandleCacheStats shows availability cache statistics
func HandleCacheStats(cmd *cobra.Command, args []string) error {
	c := openCache()
	display.DisplayCacheStats(c.GetStats())
	return nil
}

// HandleCacheCleanup sweeps expired entries and compacts the snapshot
func HandleCacheCleanup(cmd *cobra.Command, args []string) error {
	c := openCache()
	removed := c.Cleanup()
	if err := c.Flush(); err != nil {
		logging.Error("Failed to persist cache after cleanup: %v", err)
		return err
	}
	logging.Success("Removed %d expired entries", removed)
	return nil
}

// HandleCacheClear removes all cached verdicts
func HandleCacheClear(cmd *cobra.Command, args []string) error {
	c := openCache()
	if err := c.Clear(); err != nil {
		logging.Error("Failed to clear cache: %v", err)
		return err
	}
	logging.Success("Availability cache cleared")
	return nil
}
