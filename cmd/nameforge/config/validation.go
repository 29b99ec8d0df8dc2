// Package config provides configuration management for the nameforge CLI.
package config

import (
	"fmt"

	"github.com/nameforge-dev/nameforge/internal/logging"
	"github.com/nameforge-dev/nameforge/internal/validate"
	"github.com/spf13/cobra"
)

// ValidateGlobalFlags validates all global flags before running any command
func ValidateGlobalFlags(cmd *cobra.Command, args []string) error {
	if err := ValidateOutputFormat(); err != nil {
		return err
	}

	if err := logging.ValidateLogLevel(Global.LogLevel); err != nil {
		return err
	}

	// Verbose implies debug logging regardless of the configured level
	if Global.Verbose {
		logging.SetLevel("DEBUG")
	} else {
		logging.SetLevel(Global.LogLevel)
	}

	return nil
}

// ValidateOutputFormat validates the --output flag
func ValidateOutputFormat() error {
	validOutputs := map[string]bool{
		"table": true,
		"json":  true,
	}
	if !validOutputs[Global.Output] {
		logging.Error("Invalid output format '%s' - valid formats are: table, json", Global.Output)
		return fmt.Errorf("invalid output format - valid: table, json")
	}
	return nil
}

// ValidateTLDFlags validates TLD list flags shared by check and hunt
func ValidateTLDFlags(tlds []string) error {
	if len(tlds) == 0 {
		return nil // Empty falls back to the default TLD list
	}
	if err := validate.TLDList(tlds); err != nil {
		logging.Error("Invalid TLD list: %v", err)
		return err
	}
	return nil
}
