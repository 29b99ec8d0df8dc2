// Package commands provides name generation command definitions for nameforge.
//
// GENERATE COMMAND:
//   - generate: Produces scored, ranked name suggestions from a description
//
// Generation is fully local: no network traffic happens until the user runs
// check or hunt on the results.

package commands

import (
	"github.com/spf13/cobra"
)

// Generate command (name suggestions)
var generateCmd = &cobra.Command{
	Use:   "generate <description>",
	Short: "Generate scored name suggestions from a project description",
	Long: `Generate brandable name suggestions from a short project description.

Keywords are extracted from the description and combined through several
strategies (direct use, prefix/suffix affixing, compounds, portmanteau
blends, tech-term combos, spelling variations). Every candidate is scored
0-100 across pronounceability, length, brandability, memorability, and
typing ease, then ranked best-first.`,
	Example: `  # Generate suggestions with defaults (top 20, min score 55)
  nameforge generate "AI-powered task manager for teams"

  # Ask for more suggestions with a higher quality floor
  nameforge generate --max=50 --min-score=70 "code review platform"

  # Group results into grade tiers (A/B/C)
  nameforge generate --by-grade "fitness tracking app"

  # JSON output for scripting
  nameforge -o json generate "realtime analytics dashboard"`,
	Args: cobra.ExactArgs(1),
	// RunE will be set by the main package that imports this
}

// GetGenerateCommand returns the generate command for handler assignment
func GetGenerateCommand() *cobra.Command {
	return generateCmd
}
