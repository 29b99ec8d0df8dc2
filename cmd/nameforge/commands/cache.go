// Cache maintenance command definitions for nameforge.
//
// CACHE COMMANDS:
//   - cache stats: Hit/miss counters and entry counts
//   - cache cleanup: Sweep expired entries and compact the snapshot
//   - cache clear: Drop all cached verdicts

package commands

import (
	"github.com/spf13/cobra"
)

// Cache parent command
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and maintain the availability cache",
	Long: `Inspect and maintain the on-disk availability verdict cache.

Verdicts are trusted for a TTL (24h for definitive verdicts, 1h for
failures) and persist across runs in a JSON snapshot under the user
cache directory.`,
}

// Cache stats command
var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cache hit/miss statistics and entry counts",
	Example: `  # Show cache statistics
  nameforge cache stats

  # JSON output
  nameforge -o json cache stats`,
	Args: cobra.NoArgs,
}

// Cache cleanup command
var cacheCleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Sweep expired entries and compact the cache snapshot",
	Args:  cobra.NoArgs,
}

// Cache clear command
var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached availability verdicts",
	Args:  cobra.NoArgs,
}

// SetupCacheCommands wires the cache subcommand tree
func SetupCacheCommands() {
	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cacheCleanupCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}

// GetCacheCommands returns cache subcommands for handler assignment
func GetCacheCommands() (statsCmd, cleanupCmd, clearCmd *cobra.Command) {
	return cacheStatsCmd, cacheCleanupCmd, cacheClearCmd
}
