// Package checker resolves domain availability for batches of candidate
// names, tolerating an unreliable upstream lookup ecosystem through caching,
// bounded concurrency, retry with exponential backoff, and RDAP-to-WHOIS
// fallback.
//
// RESOLUTION PROTOCOL:
// Each domain goes through a small per-attempt state machine:
//
//	TryStructured (RDAP) -> available | registered | inconclusive | failure
//	TryUnstructured (WHOIS) -> available | registered | unknown | failure
//	failure -> exponential backoff retry, up to MaxRetries, then give up
//
// Attempt outcomes are tagged values, never exceptions-as-control-flow: a
// TLD with no RDAP endpoint is an expected inconclusive, not an error.
//
// BATCH SCHEDULING:
// The full name x TLD domain list is processed in fixed-size windows. All
// checks inside a window run concurrently; a window only completes when
// every check in it has resolved (a hard barrier), capping peak concurrency
// at the window size. A short delay between windows bounds the request rate
// against upstream registries. Results are collected positionally so the
// output order always matches the input expansion regardless of completion
// order.
//
// CACHE INTEGRATION:
// Every resolution consults the availability cache first and writes its
// verdict back (including failures, under a shorter TTL) so repeat checks
// inside the trust window cost nothing. The checker never touches cache
// internals beyond the cache package's own interface.
package checker

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/nameforge-dev/nameforge/internal/cache"
	"github.com/nameforge-dev/nameforge/internal/config"
	"github.com/nameforge-dev/nameforge/internal/logging"
)

// Lookup method labels recorded on results.
const (
	methodRDAP   = "rdap"
	methodWHOIS  = "whois"
	methodFailed = "failed"
	methodCache  = "cache"
)

// Status strings recorded on results.
const (
	StatusAvailable  = "available"
	StatusRegistered = "registered"
	StatusUnknown    = "unknown"
	StatusError      = "error"
)

// outcomeKind tags the result of one lookup attempt.
type outcomeKind int

const (
	outcomeAvailable    outcomeKind = iota // confirmed not registered
	outcomeRegistered                      // confirmed registered
	outcomeUnknown                         // terminal indeterminate, no retry
	outcomeInconclusive                    // try the next lookup method
	outcomeFailure                         // retryable error
)

// attemptOutcome is the tagged result of a single lookup step.
type attemptOutcome struct {
	kind   outcomeKind
	method string
	err    error
}

// Result is the availability verdict for one domain. Available is
// tri-state: nil means the lookup could not determine registration state,
// which is distinct from false (confirmed registered).
type Result struct {
	Domain    string `json:"domain"`
	Available *bool  `json:"available"`
	Status    string `json:"status"`
	Method    string `json:"method"`
	Cached    bool   `json:"cached"`
	Error     string `json:"error,omitempty"`
}

// Grouped partitions results by their tri-state availability.
type Grouped struct {
	Available  []Result `json:"available"`
	Registered []Result `json:"registered"`
	Unknown    []Result `json:"unknown"`
}

// ProgressFunc receives incremental batch progress after each window.
type ProgressFunc func(completed, total int)

// Options configures checker behavior. Unset MaxConcurrent, Timeout, and
// RetryDelay fall back to project defaults. MaxRetries and BatchDelay treat
// zero as a real setting (no retries, no inter-window pause); negative
// values fall back to defaults. The endpoint maps exist for tests and
// private registries; leaving them nil uses the built-in registry tables.
type Options struct {
	MaxConcurrent int           `json:"max_concurrent"` // Window size
	Timeout       time.Duration `json:"timeout"`        // Per-attempt deadline
	MaxRetries    int           `json:"max_retries"`    // Retries after the first attempt
	RetryDelay    time.Duration `json:"retry_delay"`    // Base backoff delay
	BatchDelay    time.Duration `json:"batch_delay"`    // Pause between windows

	RDAPEndpoints map[string]string `json:"-"` // TLD -> RDAP base URL override
	WhoisServers  map[string]string `json:"-"` // TLD -> WHOIS host override
}

// DefaultOptions returns the standard checker preset.
func DefaultOptions() Options {
	return Options{
		MaxConcurrent: config.DefaultMaxConcurrent,
		Timeout:       config.DefaultLookupTimeout,
		MaxRetries:    config.DefaultMaxRetries,
		RetryDelay:    config.DefaultRetryDelay,
		BatchDelay:    config.DefaultBatchDelay,
	}
}

// QuickOptions returns a preset tuned for interactive runs: shorter
// timeouts and a single retry trade accuracy for responsiveness.
func QuickOptions() Options {
	opts := DefaultOptions()
	opts.Timeout = 3 * time.Second
	opts.MaxRetries = 1
	opts.RetryDelay = time.Second
	return opts
}

// withDefaults fills unset option fields from DefaultOptions. Zero is a
// valid MaxRetries and BatchDelay, so only negatives are replaced there.
func (o Options) withDefaults() Options {
	defaults := DefaultOptions()
	if o.MaxConcurrent <= 0 {
		o.MaxConcurrent = defaults.MaxConcurrent
	}
	if o.Timeout <= 0 {
		o.Timeout = defaults.Timeout
	}
	if o.MaxRetries < 0 {
		o.MaxRetries = defaults.MaxRetries
	}
	if o.RetryDelay <= 0 {
		o.RetryDelay = defaults.RetryDelay
	}
	if o.BatchDelay < 0 {
		o.BatchDelay = defaults.BatchDelay
	}
	return o
}

// Checker resolves domain availability with caching and retry. Safe for
// concurrent use.
type Checker struct {
	cache *cache.Cache
	rdap  *resty.Client
	opts  Options

	rdapEndpoints map[string]string
	whoisServers  map[string]string
}

// restyLogger routes Resty's internal logging through structured logging.
type restyLogger struct{}

func (restyLogger) Errorf(format string, v ...interface{}) { logging.Error(format, v...) }
func (restyLogger) Warnf(format string, v ...interface{})  { logging.Warn(format, v...) }
func (restyLogger) Debugf(format string, v ...interface{}) { logging.Debug(format, v...) }

// New creates a checker backed by the given cache. The RDAP HTTP client
// carries the per-attempt timeout; retry is handled by the checker's own
// backoff loop, so Resty's built-in retry stays disabled to keep attempt
// accounting exact.
func New(c *cache.Cache, opts Options) *Checker {
	opts = opts.withDefaults()

	client := resty.New()
	client.SetLogger(restyLogger{})
	client.
		SetTimeout(opts.Timeout).
		SetHeader("Accept", "application/rdap+json").
		SetHeader("User-Agent", "nameforge/0.1")

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		logging.Debug("RDAP request: %s %s", req.Method, req.URL)
		return nil
	})
	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		logging.Debug("RDAP response: %d %s (took %v)",
			resp.StatusCode(), resp.Request.URL, resp.Time())
		return nil
	})

	endpoints := opts.RDAPEndpoints
	if endpoints == nil {
		endpoints = rdapEndpoints
	}
	servers := opts.WhoisServers
	if servers == nil {
		servers = whoisServers
	}

	return &Checker{
		cache:         c,
		rdap:          client,
		opts:          opts,
		rdapEndpoints: endpoints,
		whoisServers:  servers,
	}
}

// CheckDomain resolves availability for a single domain: cache first, then
// retry-with-fallback resolution, then a cache write-back of the verdict
// (including failed verdicts, under the shorter error TTL).
func (ch *Checker) CheckDomain(ctx context.Context, domain string) Result {
	if verdict, ok := ch.cache.Get(domain); ok {
		logging.Debug("Cache hit for %s: %s", domain, verdict.Status)
		return Result{
			Domain:    domain,
			Available: verdict.Available,
			Status:    verdict.Status,
			Method:    verdict.Method,
			Cached:    true,
			Error:     verdict.Error,
		}
	}

	result := ch.checkDomainWithRetry(ctx, domain)

	verdict := cache.Verdict{
		Available: result.Available,
		Status:    result.Status,
		Method:    result.Method,
		Error:     result.Error,
	}
	if result.Status == StatusError {
		ch.cache.SetTTL(domain, verdict, config.DefaultErrorTTL)
	} else {
		ch.cache.Set(domain, verdict)
	}

	return result
}

// checkDomainWithRetry runs the per-attempt state machine with exponential
// backoff. Attempt N sleeps RetryDelay * 2^N before retrying; after
// MaxRetries+1 total attempts the domain is recorded as an error result.
func (ch *Checker) checkDomainWithRetry(ctx context.Context, domain string) Result {
	var lastErr error

	for attempt := 0; attempt <= ch.opts.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := ch.opts.RetryDelay * (1 << (attempt - 1))
			logging.Debug("Retrying %s in %v (attempt %d/%d)",
				domain, delay, attempt, ch.opts.MaxRetries)
			if !sleepCtx(ctx, delay) {
				lastErr = ctx.Err()
				break
			}
		}

		outcome := ch.attempt(ctx, domain)
		switch outcome.kind {
		case outcomeAvailable:
			return verdictResult(domain, boolPtr(true), StatusAvailable, outcome.method)
		case outcomeRegistered:
			return verdictResult(domain, boolPtr(false), StatusRegistered, outcome.method)
		case outcomeUnknown:
			return verdictResult(domain, nil, StatusUnknown, outcome.method)
		case outcomeFailure:
			lastErr = outcome.err
			logging.Debug("Lookup attempt %d for %s failed: %v", attempt, domain, outcome.err)
		}
	}

	result := verdictResult(domain, nil, StatusError, methodFailed)
	if lastErr != nil {
		result.Error = lastErr.Error()
	}
	return result
}

// attempt runs one full lookup pass: structured RDAP first, then WHOIS when
// RDAP is unavailable or inconclusive. An RDAP failure aborts the attempt
// (retryable) rather than masking the error behind a WHOIS fallback.
func (ch *Checker) attempt(ctx context.Context, domain string) attemptOutcome {
	outcome := ch.rdapLookup(ctx, domain)
	if outcome.kind != outcomeInconclusive {
		return outcome
	}
	return ch.whoisLookup(ctx, domain)
}

// CheckAvailability resolves the full name x TLD expansion. Results are
// returned in name-major, TLD-minor order regardless of completion order,
// and the slice length always equals len(names) * len(tlds): per-domain
// failures become error results, never batch aborts.
//
// The optional progress callback fires after each window with the running
// completed count and the total.
func (ch *Checker) CheckAvailability(ctx context.Context, names, tlds []string, progress ProgressFunc) []Result {
	domains := ExpandDomains(names, tlds)
	results := make([]Result, len(domains))
	total := len(domains)

	logging.Info("Checking availability for %d domains (%d names x %d TLDs, window %d)",
		total, len(names), len(tlds), ch.opts.MaxConcurrent)

	for start := 0; start < total; start += ch.opts.MaxConcurrent {
		end := start + ch.opts.MaxConcurrent
		if end > total {
			end = total
		}

		// Fail fast once the caller's context is gone: remaining domains
		// become error results so the batch size invariant holds
		if ctx.Err() != nil {
			for i := start; i < total; i++ {
				results[i] = verdictResult(domains[i], nil, StatusError, methodFailed)
				results[i].Error = ctx.Err().Error()
			}
			if progress != nil {
				progress(total, total)
			}
			return results
		}

		pending := end - start
		done := make(chan int, pending)
		for i := start; i < end; i++ {
			go func(idx int) {
				results[idx] = ch.CheckDomain(ctx, domains[idx])
				done <- idx
			}(i)
		}

		// Hard barrier: the next window cannot start until every check in
		// this one has resolved
		for i := 0; i < pending; i++ {
			<-done
		}

		if progress != nil {
			progress(end, total)
		}

		if end < total && ch.opts.BatchDelay > 0 {
			sleepCtx(ctx, ch.opts.BatchDelay)
		}
	}

	return results
}

// ExpandDomains produces the Cartesian expansion of names x TLDs in
// name-major order: for each name, every TLD in list order.
func ExpandDomains(names, tlds []string) []string {
	domains := make([]string, 0, len(names)*len(tlds))
	for _, name := range names {
		for _, tld := range tlds {
			domains = append(domains, name+tld)
		}
	}
	return domains
}

// GroupByStatus partitions results into available, registered, and unknown
// buckets by their tri-state availability. Error results land in unknown:
// a human must never mistake "could not verify" for "definitely taken".
func GroupByStatus(results []Result) Grouped {
	var grouped Grouped
	for _, r := range results {
		switch {
		case r.Available != nil && *r.Available:
			grouped.Available = append(grouped.Available, r)
		case r.Available != nil:
			grouped.Registered = append(grouped.Registered, r)
		default:
			grouped.Unknown = append(grouped.Unknown, r)
		}
	}
	return grouped
}

// verdictResult assembles a non-cached result.
func verdictResult(domain string, available *bool, status, method string) Result {
	return Result{
		Domain:    domain,
		Available: available,
		Status:    status,
		Method:    method,
	}
}

// sleepCtx sleeps for d unless the context ends first. Returns false when
// the sleep was interrupted.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}

// boolPtr returns a pointer to b for the tri-state Available field.
func boolPtr(b bool) *bool {
	return &b
}
