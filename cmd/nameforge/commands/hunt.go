// Full pipeline command definitions for nameforge.
//
// HUNT COMMAND:
//   - hunt: Generate suggestions from a description and check them in one run

package commands

import (
	"github.com/spf13/cobra"
)

// Hunt command (generate + check pipeline)
var huntCmd = &cobra.Command{
	Use:   "hunt <description>",
	Short: "Generate name suggestions and check their domain availability",
	Long: `Run the full pipeline: generate scored name suggestions from a project
description, then check every suggestion's domain availability across the
TLD list. The output pairs each suggestion's quality score with its
availability verdicts so the best registrable names surface immediately.`,
	Example: `  # Hunt with defaults
  nameforge hunt "AI-powered task manager for teams"

  # Narrow the TLD list and raise the quality floor
  nameforge hunt --tlds=.com,.io --min-score=70 "code review platform"

  # Faster preset for interactive exploration
  nameforge hunt --quick "fitness tracking app"`,
	Args: cobra.ExactArgs(1),
	// RunE will be set by the main package that imports this
}

// GetHuntCommand returns the hunt command for handler assignment
func GetHuntCommand() *cobra.Command {
	return huntCmd
}
