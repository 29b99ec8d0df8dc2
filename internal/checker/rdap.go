// RDAP structured lookup: query the registry's RDAP endpoint for a domain
// and classify the response into an attempt outcome. RDAP is preferred over
// WHOIS because a 404 is an unambiguous "not registered" and registration
// state arrives as structured JSON instead of free text.

package checker

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// rdapResponse is the subset of an RDAP domain object the checker inspects.
// Anything beyond status and lifecycle events is irrelevant to the
// availability verdict.
type rdapResponse struct {
	ObjectClassName string      `json:"objectClassName"`
	Status          []string    `json:"status"`
	Events          []rdapEvent `json:"events"`
}

// rdapEvent is one lifecycle event record (registration, expiration, etc.).
type rdapEvent struct {
	Action string `json:"eventAction"`
	Date   string `json:"eventDate"`
}

// rdapLookup performs a structured lookup for a domain. Outcomes:
//
//   - no RDAP endpoint for the TLD: inconclusive, no error (WHOIS takes over)
//   - HTTP 404: the registry doesn't know the domain, so it's available
//   - active/ok status or any lifecycle events: registered
//   - parseable response with neither signal: inconclusive
//   - network error, timeout, or unexpected HTTP status: failure (retryable)
func (ch *Checker) rdapLookup(ctx context.Context, domain string) attemptOutcome {
	base, ok := ch.rdapEndpoints[domainTLD(domain)]
	if !ok {
		// Unknown endpoint is an expected case, not an error
		return attemptOutcome{kind: outcomeInconclusive}
	}

	resp, err := ch.rdap.R().
		SetContext(ctx).
		Get(fmt.Sprintf("%s/domain/%s", base, domain))
	if err != nil {
		return attemptOutcome{
			kind:   outcomeFailure,
			method: methodRDAP,
			err:    fmt.Errorf("rdap request for %s failed: %w", domain, err),
		}
	}

	switch resp.StatusCode() {
	case http.StatusNotFound:
		return attemptOutcome{kind: outcomeAvailable, method: methodRDAP}
	case http.StatusOK:
		return classifyRDAP(domain, resp.Body())
	default:
		return attemptOutcome{
			kind:   outcomeFailure,
			method: methodRDAP,
			err:    fmt.Errorf("rdap lookup for %s returned status %d", domain, resp.StatusCode()),
		}
	}
}

// classifyRDAP maps a 200 RDAP body to an outcome. An active or ok status
// entry, or the presence of any lifecycle event records, confirms
// registration; a malformed body is a retryable failure; anything else is
// inconclusive and falls through to WHOIS.
func classifyRDAP(domain string, body []byte) attemptOutcome {
	var parsed rdapResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return attemptOutcome{
			kind:   outcomeFailure,
			method: methodRDAP,
			err:    fmt.Errorf("rdap response for %s unparseable: %w", domain, err),
		}
	}

	for _, status := range parsed.Status {
		s := strings.ToLower(status)
		if s == "active" || s == "ok" {
			return attemptOutcome{kind: outcomeRegistered, method: methodRDAP}
		}
	}
	if len(parsed.Events) > 0 {
		return attemptOutcome{kind: outcomeRegistered, method: methodRDAP}
	}

	return attemptOutcome{kind: outcomeInconclusive}
}
