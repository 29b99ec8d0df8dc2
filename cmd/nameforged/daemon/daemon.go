// Package daemon provides the NameForge daemon orchestration and lifecycle
// management.
//
// The daemon wires three components into one process: the persistent
// availability cache, the domain checker built on top of it, and the HTTP
// API server exposing the pipeline. Startup is sequential in dependency
// order (cache, checker, API) and shutdown runs in reverse, flushing the
// cache snapshot last so no verdicts are lost.
//
// EXECUTION FLOW:
// 1. Logging configuration from the --log-level flag
// 2. Cache construction, loading the persisted snapshot if present
// 3. Checker construction over the shared cache
// 4. HTTP API startup with a bind test to surface errors immediately
// 5. Signal wait (SIGINT/SIGTERM)
// 6. Graceful shutdown: API drain with timeout, then cache flush
package daemon

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nameforge-dev/nameforge/cmd/nameforged/config"
	"github.com/nameforge-dev/nameforge/internal/api"
	"github.com/nameforge-dev/nameforge/internal/cache"
	"github.com/nameforge-dev/nameforge/internal/checker"
	"github.com/nameforge-dev/nameforge/internal/logging"
)

// shutdownTimeout bounds how long in-flight API requests may take to drain.
const shutdownTimeout = 10 * time.Second

// buildCache constructs the availability cache from daemon config
func buildCache() *cache.Cache {
	path := config.Global.CachePath
	if path == "" {
		path = cache.DefaultPath()
	}
	return cache.New(cache.Config{Path: path})
}

// buildChecker constructs the domain checker over the shared cache
func buildChecker(c *cache.Cache) *checker.Checker {
	opts := checker.DefaultOptions()
	if config.Global.Quick {
		opts = checker.QuickOptions()
	}
	return checker.New(c, opts)
}

// buildAPIConfig converts daemon config to API config
func buildAPIConfig(c *cache.Cache, ch *checker.Checker) *api.Config {
	apiConfig := api.DefaultConfig()

	apiConfig.BindAddr = config.Global.BindAddr
	apiConfig.BindPort = config.Global.BindPort
	apiConfig.Cache = c
	apiConfig.Checker = ch

	return apiConfig
}

// Run orchestrates the daemon lifecycle from initialization to graceful
// shutdown.
func Run() error {
	// Apply logging level early to respect --log-level before any output
	logging.SetLevel(config.Global.LogLevel)
	logging.Info("Starting NameForge daemon v%s", config.Version)

	c := buildCache()
	ch := buildChecker(c)

	apiConfig := buildAPIConfig(c, ch)
	if err := apiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid API configuration: %w", err)
	}

	server := api.NewServer(apiConfig)
	if err := server.Start(); err != nil {
		return fmt.Errorf("failed to start API server: %w", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	logging.Success("NameForge daemon started successfully")
	logging.Info("Daemon running... Press Ctrl+C to shutdown")

	sig := <-sigCh
	logging.Info("Received signal: %v", sig)

	// Graceful shutdown: drain the API first, then persist the cache
	logging.Info("Initiating graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logging.Error("Error shutting down API server: %v", err)
	}

	if err := c.Flush(); err != nil {
		logging.Error("Error persisting availability cache: %v", err)
	}

	logging.Success("NameForge daemon shutdown completed")
	return nil
}
