package handlers

import (
	"github.com/nameforge-dev/nameforge/cmd/nameforge/config"
	"github.com/nameforge-dev/nameforge/cmd/nameforge/display"
	internalconfig "github.com/nameforge-dev/nameforge/internal/config"
	"github.com/nameforge-dev/nameforge/internal/generate"
	"github.com/nameforge-dev/nameforge/internal/logging"
	"github.com/nameforge-dev/nameforge/internal/validate"
	"github.com/spf13/cobra"
)

// HandleHunt runs the full pipeline: generate suggestions, then check their
// domain availability
func HandleHunt(cmd *cobra.Command, args []string) error {
	description := args[0]

	tlds := config.Hunt.TLDs
	if len(tlds) == 0 {
		tlds = internalconfig.DefaultTLDs
	}
	if err := validate.TLDList(tlds); err != nil {
		return err
	}

	genOpts := generate.Options{
		MaxSuggestions: config.Hunt.Max,
		MinScore:       config.Hunt.MinScore,
	}
	if config.Hunt.Quick {
		genOpts = generate.QuickOptions()
	}

	suggestions, err := generate.Generate(description, genOpts)
	if err != nil {
		logging.Error("Generation failed: %v", err)
		return err
	}
	if len(suggestions) == 0 {
		logging.Warn("No suggestions cleared the quality floor for %q", description)
		display.DisplaySuggestions(suggestions)
		return nil
	}

	names := make([]string, len(suggestions))
	for i, s := range suggestions {
		names[i] = s.Name
	}

	c := openCache()
	ch := newChecker(c, config.Hunt.Quick)

	ctx, cancel := interruptContext()
	defer cancel()

	results := ch.CheckAvailability(ctx, names, tlds, display.Progress)
	display.DisplayHuntResults(suggestions, results, tlds)

	if err := c.Flush(); err != nil {
		logging.Warn("Availability cache snapshot failed: %v", err)
	}
	return nil
}
