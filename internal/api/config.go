// Package api provides the HTTP API server for NameForge.
//
// This file defines configuration and validation for the REST API server
// that exposes name generation and domain availability checking to external
// clients. The configuration wires the server to the shared availability
// cache and the domain checker so that HTTP requests and CLI runs share one
// verdict store.
//
// TODO: Add support for TLS/HTTPS configuration (cert/key files)
package api

import (
	"fmt"

	"github.com/nameforge-dev/nameforge/internal/cache"
	"github.com/nameforge-dev/nameforge/internal/checker"
	"github.com/nameforge-dev/nameforge/internal/config"
	"github.com/nameforge-dev/nameforge/internal/validate"
)

// Config holds all configuration parameters required for running the HTTP
// API server. The cache and checker references act as a dependency
// injection container: the daemon constructs them once and every endpoint
// operates against the same instances.
type Config struct {
	BindAddr string           // HTTP server bind address (e.g., "0.0.0.0")
	BindPort int              // HTTP server bind port
	Cache    *cache.Cache     // Shared availability verdict cache
	Checker  *checker.Checker // Domain availability checker
}

// DefaultConfig creates a Config with defaults suitable for local
// development. The daemon overrides the bind address for external exposure.
func DefaultConfig() *Config {
	return &Config{
		BindAddr: "127.0.0.1",
		BindPort: config.DefaultAPIPort,
		Cache:    nil, // Must be set by caller
		Checker:  nil, // Must be set by caller
	}
}

// Validate ensures the API server can start successfully: valid network
// binding and all required components wired.
func (c *Config) Validate() error {
	if c.BindAddr == "" {
		return fmt.Errorf("bind address cannot be empty")
	}
	if err := validate.ValidateField(c.BindPort, "min=0,max=65535"); err != nil {
		return fmt.Errorf("bind port validation failed: %w", err)
	}
	if c.Cache == nil {
		return fmt.Errorf("cache cannot be nil")
	}
	if c.Checker == nil {
		return fmt.Errorf("checker cannot be nil")
	}
	return nil
}
