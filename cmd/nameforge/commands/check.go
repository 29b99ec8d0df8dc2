// Availability checking command definitions for nameforge.
//
// CHECK COMMAND:
//   - check: Check explicit names against a TLD list via RDAP and WHOIS
//
// Checks run through the shared availability cache, so repeated runs inside
// the verdict trust window resolve instantly.

package commands

import (
	"github.com/spf13/cobra"
)

// Check command (domain availability)
var checkCmd = &cobra.Command{
	Use:   "check <name> [name...]",
	Short: "Check domain availability for names across TLDs",
	Long: `Check domain availability for one or more names across a TLD list.

Each name is expanded against every TLD and checked via RDAP with WHOIS
fallback. Lookups run concurrently in bounded windows and failed lookups
are retried with exponential backoff. Results are grouped by verdict:
available, registered, and unknown.`,
	Example: `  # Check names against the default TLD list
  nameforge check taskify workhub

  # Check against specific TLDs
  nameforge check --tlds=.com,.io,.dev taskify

  # Faster preset for interactive use
  nameforge check --quick taskify

  # Ignore cached verdicts
  nameforge check --no-cache taskify

  # JSON output for scripting
  nameforge -o json check taskify`,
	Args: cobra.MinimumNArgs(1),
	// RunE will be set by the main package that imports this
}

// GetCheckCommand returns the check command for handler assignment
func GetCheckCommand() *cobra.Command {
	return checkCmd
}
