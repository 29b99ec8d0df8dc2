// Package validate provides input validation utilities for NameForge,
// ensuring data integrity across name generation, availability checking,
// and configuration management.
//
// Implements validation rules for candidate names, domain strings, TLD
// suffixes, and network addresses. Prevents malformed data from reaching
// the scoring pipeline or upstream registries.
//
// VALIDATION COVERAGE:
//   - Candidate Names: Format validation for generated name candidates
//   - TLDs: Leading-dot suffix validation for availability expansion
//   - Domains: Full domain string validation before network lookups
//   - Network Addresses: IP and port validation for the API daemon
//
// Used throughout CLI tools, the API daemon, and the core pipeline to ensure
// consistent input validation across all system entry points.

package validate

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	candidateRegex = regexp.MustCompile(`^[a-z0-9]+$`)
	allDigitsRegex = regexp.MustCompile(`^[0-9]+$`)
	tldRegex       = regexp.MustCompile(`^\.[a-z]{2,24}$`)
	domainRegex    = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?(\.[a-z]{2,24})+$`)
)

// CandidateName validates a generated name candidate against the format the
// scoring pipeline and registries accept: lowercase alphanumeric, within the
// given length window, and not composed entirely of digits.
//
// All-digit strings are rejected because they are technically registrable but
// never useful as brand candidates and skew scoring heuristics.
func CandidateName(name string, minLen, maxLen int) error {
	if name == "" {
		return fmt.Errorf("candidate name cannot be empty")
	}
	if !candidateRegex.MatchString(name) {
		return fmt.Errorf("candidate name '%s' must contain only lowercase letters [a-z] and numbers [0-9]", name)
	}
	if len(name) < minLen || len(name) > maxLen {
		return fmt.Errorf("candidate name '%s' must be between %d and %d characters, got %d",
			name, minLen, maxLen, len(name))
	}
	if allDigitsRegex.MatchString(name) {
		return fmt.Errorf("candidate name '%s' cannot be all digits", name)
	}
	return nil
}

// IsCandidateName reports whether a string passes candidate validation.
// Convenience wrapper for filtering loops that don't need the error detail.
func IsCandidateName(name string, minLen, maxLen int) bool {
	return CandidateName(name, minLen, maxLen) == nil
}

// TLD validates a top-level domain suffix for availability expansion.
// TLDs must begin with a dot and contain only lowercase letters, matching
// the keys of the RDAP endpoint and WHOIS server tables.
func TLD(tld string) error {
	if tld == "" {
		return fmt.Errorf("TLD cannot be empty")
	}
	if !strings.HasPrefix(tld, ".") {
		return fmt.Errorf("TLD '%s' must begin with a dot (e.g. .com)", tld)
	}
	if !tldRegex.MatchString(tld) {
		return fmt.Errorf("TLD '%s' must be a dot followed by 2-24 lowercase letters", tld)
	}
	return nil
}

// TLDList validates a slice of TLD suffixes, returning the first failure.
// Used by CLI flag validation and API request handling before any domain
// expansion happens.
func TLDList(tlds []string) error {
	if len(tlds) == 0 {
		return fmt.Errorf("TLD list cannot be empty")
	}
	for _, tld := range tlds {
		if err := TLD(tld); err != nil {
			return err
		}
	}
	return nil
}

// Domain validates a full domain string before it is handed to RDAP or WHOIS.
// Accepts lowercase labels with internal hyphens followed by one or more
// dot-separated suffixes.
func Domain(domain string) error {
	if domain == "" {
		return fmt.Errorf("domain cannot be empty")
	}
	if !domainRegex.MatchString(domain) {
		return fmt.Errorf("invalid domain '%s' - expected format: name.tld (lowercase)", domain)
	}
	return nil
}
