// Package commands provides the CLI command structure for the NameForge daemon.
//
// The daemon uses a simple root command with flags for network binding,
// cache placement, and operational settings. Validation runs before the
// daemon starts so misconfiguration surfaces as a flag error, not a
// runtime bind failure.
package commands

import (
	"fmt"

	"github.com/nameforge-dev/nameforge/cmd/nameforged/config"
	"github.com/nameforge-dev/nameforge/cmd/nameforged/daemon"
	internalconfig "github.com/nameforge-dev/nameforge/internal/config"
	"github.com/nameforge-dev/nameforge/internal/logging"
	"github.com/nameforge-dev/nameforge/internal/validate"
	"github.com/spf13/cobra"
)

// Root command for the NameForge daemon
var RootCmd = &cobra.Command{
	Use:   "nameforged",
	Short: "NameForge REST API daemon for name generation and domain availability",
	Long: `NameForge daemon (nameforged) serves the name generation and domain
availability pipeline over a REST API.

Endpoints cover suggestion generation, availability checking with RDAP and
WHOIS lookups, and management of the persistent verdict cache shared with
the nameforge CLI.`,
	Version:      config.Version,
	SilenceUsage: true,
	Example: `  # Start with defaults (0.0.0.0:8909)
  nameforged

  # Bind to a specific address and port
  nameforged --api=127.0.0.1:9000

  # Use a dedicated cache file
  nameforged --cache-path=/var/lib/nameforge/availability.json

  # Verbose logging
  nameforged --log-level=DEBUG`,
	PreRunE: validateConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		return daemon.Run()
	},
}

func init() {
	RootCmd.Flags().StringVar(&config.Global.APIAddr, "api",
		fmt.Sprintf("%s:%d", internalconfig.DefaultBindAddr, internalconfig.DefaultAPIPort),
		"API bind address and port (e.g., 0.0.0.0:8909)")
	RootCmd.Flags().StringVar(&config.Global.CachePath, "cache-path", "",
		"Availability cache file path (default: user cache directory)")
	RootCmd.Flags().StringVar(&config.Global.LogLevel, "log-level", internalconfig.DefaultLogLevel,
		"Log level: DEBUG, INFO, WARN, ERROR")
	RootCmd.Flags().BoolVar(&config.Global.Quick, "quick", false,
		"Use the quick checker preset (shorter timeouts, fewer retries)")
}

// validateConfig validates all flags before the daemon starts
func validateConfig(cmd *cobra.Command, args []string) error {
	netAddr, err := validate.ParseBindAddress(config.Global.APIAddr)
	if err != nil {
		return fmt.Errorf("invalid API address: %w", err)
	}

	// Daemon requires non-zero ports (port 0 would let OS choose)
	if err := validate.ValidateField(netAddr.Port, "required,min=1,max=65535"); err != nil {
		return fmt.Errorf("daemon requires specific port (not 0): %w", err)
	}

	config.Global.BindAddr = netAddr.Host
	config.Global.BindPort = netAddr.Port

	return logging.ValidateLogLevel(config.Global.LogLevel)
}
