// Package config provides configuration management for the nameforged daemon.
package config

import "github.com/nameforge-dev/nameforge/internal/version"

// Version returns the current nameforged daemon version from the centralized version package
var Version = version.NameforgedVersion

// Global holds the daemon configuration populated from CLI flags
var Global struct {
	APIAddr   string // API bind address in host:port form
	BindAddr  string // Parsed bind host
	BindPort  int    // Parsed bind port
	CachePath string // Availability cache file path override
	LogLevel  string // Log level: DEBUG, INFO, WARN, ERROR
	Quick     bool   // Use the quick checker preset
}
