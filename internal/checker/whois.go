// WHOIS unstructured lookup: query the registry's port-43 WHOIS service and
// classify the free-text response against fixed indicator phrase lists.
// WHOIS is the fallback when a TLD has no RDAP endpoint or RDAP was
// inconclusive; its text formats vary wildly per registry, so classification
// is indicator matching, not parsing.

package checker

import (
	"context"
	"fmt"
	"io"
	"net"
	"strings"
	"time"
)

// availableIndicators are response phrases that confirm a domain is not
// registered. Checked before registeredIndicators: several registries
// include field labels like "Domain Name:" even in not-found responses.
var availableIndicators = []string{
	"no match",
	"not found",
	"no entries found",
	"no data found",
	"domain not found",
	"status: available",
	"status: free",
}

// registeredIndicators are response phrases that confirm an existing
// registration record.
var registeredIndicators = []string{
	"domain name:",
	"registrar:",
	"creation date",
	"registry domain id",
	"registered on",
}

// whoisLookup queries the WHOIS server for a domain's TLD over TCP port 43
// with a hard deadline and classifies the text response. Outcomes:
//
//   - an available-indicator phrase matches: available
//   - a registered-indicator phrase matches: registered
//   - response matches neither list: unknown (terminal, not retried)
//   - dial/write/read error or deadline hit: failure (retryable)
func (ch *Checker) whoisLookup(ctx context.Context, domain string) attemptOutcome {
	server := ch.whoisServer(domainTLD(domain))

	dialer := net.Dialer{Timeout: ch.opts.Timeout}
	conn, err := dialer.DialContext(ctx, "tcp", server)
	if err != nil {
		return attemptOutcome{
			kind:   outcomeFailure,
			method: methodWHOIS,
			err:    fmt.Errorf("whois dial %s failed: %w", server, err),
		}
	}
	defer conn.Close()

	// The deadline covers the whole query/response exchange
	if err := conn.SetDeadline(time.Now().Add(ch.opts.Timeout)); err != nil {
		return attemptOutcome{
			kind:   outcomeFailure,
			method: methodWHOIS,
			err:    fmt.Errorf("whois deadline for %s failed: %w", server, err),
		}
	}

	if _, err := fmt.Fprintf(conn, "%s\r\n", domain); err != nil {
		return attemptOutcome{
			kind:   outcomeFailure,
			method: methodWHOIS,
			err:    fmt.Errorf("whois query for %s failed: %w", domain, err),
		}
	}

	response, err := io.ReadAll(conn)
	if err != nil {
		return attemptOutcome{
			kind:   outcomeFailure,
			method: methodWHOIS,
			err:    fmt.Errorf("whois read for %s failed: %w", domain, err),
		}
	}

	return classifyWhois(string(response))
}

// classifyWhois matches a WHOIS text response against the indicator lists.
// Available indicators win over registered indicators; a response matching
// neither is a terminal unknown, not a retryable failure.
func classifyWhois(response string) attemptOutcome {
	text := strings.ToLower(response)

	for _, indicator := range availableIndicators {
		if strings.Contains(text, indicator) {
			return attemptOutcome{kind: outcomeAvailable, method: methodWHOIS}
		}
	}
	for _, indicator := range registeredIndicators {
		if strings.Contains(text, indicator) {
			return attemptOutcome{kind: outcomeRegistered, method: methodWHOIS}
		}
	}

	return attemptOutcome{kind: outcomeUnknown, method: methodWHOIS}
}

// whoisServer resolves the WHOIS host:port for a TLD, preferring the
// explicit table and falling back to the whois-servers.net alias. Table
// values may carry an explicit port for testing against local listeners.
func (ch *Checker) whoisServer(tld string) string {
	server, ok := ch.whoisServers[tld]
	if !ok {
		server = fallbackWhoisServer(tld)
	}
	if !strings.Contains(server, ":") {
		server += ":43"
	}
	return server
}
