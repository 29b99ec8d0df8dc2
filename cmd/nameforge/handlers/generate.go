package handlers

import (
	"github.com/nameforge-dev/nameforge/cmd/nameforge/config"
	"github.com/nameforge-dev/nameforge/cmd/nameforge/display"
	"github.com/nameforge-dev/nameforge/internal/generate"
	"github.com/nameforge-dev/nameforge/internal/logging"
	"github.com/spf13/cobra"
)

// HandleGenerate generates scored name suggestions from a description
func HandleGenerate(cmd *cobra.Command, args []string) error {
	description := args[0]
	opts := generate.Options{
		MaxSuggestions: config.Generate.Max,
		MinScore:       config.Generate.MinScore,
	}

	logging.Debug("Generating suggestions for %q (max=%d, minScore=%d)",
		description, opts.MaxSuggestions, opts.MinScore)

	if config.Generate.ByGrade {
		buckets, err := generate.GenerateByGrade(description, opts)
		if err != nil {
			logging.Error("Generation failed: %v", err)
			return err
		}
		display.DisplayGradeBuckets(buckets)
		return nil
	}

	suggestions, err := generate.Generate(description, opts)
	if err != nil {
		logging.Error("Generation failed: %v", err)
		return err
	}

	display.DisplaySuggestions(suggestions)
	return nil
}
