// Package validate provides network validation utilities for the NameForge
// API daemon, ensuring proper network configuration before services bind.
//
// Implements IP address, port range, and address format validation using the
// go-playground/validator library. Prevents network configuration errors that
// would otherwise surface as bind failures at daemon startup.
//
// Used for validating bind addresses and API endpoints in daemon configuration
// and CLI flag processing.
package validate

import (
	"fmt"
	"net"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var (
	// Global validator instance using built-in validations
	validate *validator.Validate
)

func init() {
	validate = validator.New()
	// Using built-in validators: ip, min, max - no custom registration needed
}

// NetworkAddress represents a validated network address with host and port
// components. Provides a standardized structure for network addresses used by
// the API daemon with built-in validation tags.
//
// Uses struct tags for automatic validation via the go-playground/validator
// library so malformed addresses are rejected before any bind attempt.
type NetworkAddress struct {
	Host string `validate:"required,ip"`              // Built-in IP validator
	Port int    `validate:"required,min=0,max=65535"` // Built-in range validator
}

// String returns the network address in standard "host:port" format suitable
// for network connections, configuration display, and logging.
func (na NetworkAddress) String() string {
	return fmt.Sprintf("%s:%d", na.Host, na.Port)
}

// ParseBindAddress parses and validates a "host:port" address string for
// daemon binding. Provides comprehensive validation including format checking,
// IP address validation, and port range verification.
//
// Essential for processing user-provided network addresses from CLI arguments
// and configuration, ensuring all endpoints are properly formatted before
// attempting network operations.
func ParseBindAddress(addr string) (*NetworkAddress, error) {
	if addr == "" {
		return nil, fmt.Errorf("address cannot be empty")
	}

	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, fmt.Errorf("invalid address format '%s': %w", addr, err)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid port '%s': %w", portStr, err)
	}

	netAddr := &NetworkAddress{
		Host: host,
		Port: port,
	}

	// Validate using struct tags
	if err := validate.Struct(netAddr); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return netAddr, nil
}

// ValidateField validates individual values against specified validation rules
// using the go-playground/validator library. Provides flexible validation for
// single fields without requiring struct definitions.
//
// Supports all built-in validation tags including IP addresses, numeric ranges,
// string patterns, and required field validation.
//
// Example: ValidateField(8909, "required,min=1,max=65535")
func ValidateField(value interface{}, tag string) error {
	return validate.Var(value, tag)
}
