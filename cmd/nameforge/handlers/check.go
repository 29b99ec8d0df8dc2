package handlers

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/nameforge-dev/nameforge/cmd/nameforge/config"
	"github.com/nameforge-dev/nameforge/cmd/nameforge/display"
	"github.com/nameforge-dev/nameforge/internal/checker"
	internalconfig "github.com/nameforge-dev/nameforge/internal/config"
	"github.com/nameforge-dev/nameforge/internal/logging"
	"github.com/nameforge-dev/nameforge/internal/validate"
	"github.com/spf13/cobra"
)

// HandleCheck checks domain availability for explicit names
func HandleCheck(cmd *cobra.Command, args []string) error {
	names := make([]string, len(args))
	for i, arg := range args {
		names[i] = strings.ToLower(strings.TrimSpace(arg))
		if err := validate.CandidateName(names[i], internalconfig.MinCheckNameLen, internalconfig.MaxCheckNameLen); err != nil {
			logging.Error("Invalid name: %v", err)
			return err
		}
	}

	tlds := config.Check.TLDs
	if len(tlds) == 0 {
		tlds = internalconfig.DefaultTLDs
	}
	if err := validate.TLDList(tlds); err != nil {
		return err
	}

	c := openCache()
	ch := newChecker(c, config.Check.Quick)

	if config.Check.NoCache {
		for _, domain := range checker.ExpandDomains(names, tlds) {
			c.Delete(domain)
		}
	}

	ctx, cancel := interruptContext()
	defer cancel()

	results := ch.CheckAvailability(ctx, names, tlds, display.Progress)
	display.DisplayCheckResults(results)

	if err := c.Flush(); err != nil {
		logging.Warn("Availability cache snapshot failed: %v", err)
	}
	return nil
}

// interruptContext returns a context cancelled on SIGINT/SIGTERM so a long
// batch can be aborted cleanly mid-run.
func interruptContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
