package checker

import (
	"testing"
)

// TestClassifyRDAP tests structured response classification
func TestClassifyRDAP(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expected    outcomeKind
		description string
	}{
		{
			name:        "active status",
			body:        `{"objectClassName":"domain","status":["active"]}`,
			expected:    outcomeRegistered,
			description: "active status confirms registration",
		},
		{
			name:        "ok status",
			body:        `{"objectClassName":"domain","status":["ok"]}`,
			expected:    outcomeRegistered,
			description: "ok status confirms registration",
		},
		{
			name:        "uppercase status normalized",
			body:        `{"status":["ACTIVE"]}`,
			expected:    outcomeRegistered,
			description: "status comparison is case insensitive",
		},
		{
			name:        "lifecycle events imply registration",
			body:        `{"objectClassName":"domain","events":[{"eventAction":"registration","eventDate":"2019-01-01T00:00:00Z"}]}`,
			expected:    outcomeRegistered,
			description: "any lifecycle event means the registry knows the domain",
		},
		{
			name:        "empty object",
			body:        `{"objectClassName":"domain"}`,
			expected:    outcomeInconclusive,
			description: "neither signal falls through to WHOIS",
		},
		{
			name:        "unrelated status values",
			body:        `{"status":["client transfer prohibited x"]}`,
			expected:    outcomeInconclusive,
			description: "unknown status strings alone are not definitive",
		},
		{
			name:        "malformed body",
			body:        `{"status": [truncated`,
			expected:    outcomeFailure,
			description: "unparseable responses are retryable failures",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := classifyRDAP("example.com", []byte(tt.body))
			if outcome.kind != tt.expected {
				t.Errorf("classifyRDAP(%s).kind = %d, want %d: %s",
					tt.body, outcome.kind, tt.expected, tt.description)
			}
		})
	}
}

// TestDomainTLD tests TLD extraction
func TestDomainTLD(t *testing.T) {
	tests := []struct {
		domain   string
		expected string
	}{
		{"example.com", ".com"},
		{"sub.example.io", ".io"},
		{"nodot", ""},
	}

	for _, tt := range tests {
		t.Run(tt.domain, func(t *testing.T) {
			if got := domainTLD(tt.domain); got != tt.expected {
				t.Errorf("domainTLD(%q) = %q, want %q", tt.domain, got, tt.expected)
			}
		})
	}
}

// TestFallbackWhoisServer tests the whois-servers.net alias construction
func TestFallbackWhoisServer(t *testing.T) {
	if got := fallbackWhoisServer(".se"); got != "se.whois-servers.net" {
		t.Errorf("fallbackWhoisServer(.se) = %q, want se.whois-servers.net", got)
	}
}

// TestRDAPEndpointCoverage verifies every default TLD has RDAP coverage so
// the common path never degrades to WHOIS
func TestRDAPEndpointCoverage(t *testing.T) {
	for _, tld := range []string{".com", ".io", ".dev", ".app", ".co"} {
		if _, ok := rdapEndpoints[tld]; !ok {
			t.Errorf("default TLD %s has no RDAP endpoint", tld)
		}
	}
}
