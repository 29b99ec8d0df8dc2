// Package config provides common default configuration values shared across
// NameForge components (generator, availability checker, cache, HTTP API).
// This centralizes configuration management and ensures consistency between
// the CLI tool and the daemon.
package config

import "time"

const (
	// DefaultBindAddr is the default bind address for the HTTP API daemon
	// Using 0.0.0.0 allows binding to all available network interfaces
	DefaultBindAddr = "0.0.0.0"

	// DefaultAPIPort is the default port for the HTTP API daemon
	DefaultAPIPort = 8909

	// DefaultLogLevel is the default log level for all components
	// INFO provides good balance of visibility without verbose debug output
	DefaultLogLevel = "INFO"

	// DefaultCacheFile is the default file name for the persisted availability
	// cache. Resolved relative to the user cache directory when no explicit
	// path is configured.
	DefaultCacheFile = "nameforge/availability.json"

	// DefaultCacheTTL bounds how long an availability verdict is trusted
	// before a fresh lookup is required. WHOIS data changes slowly enough
	// that a day is a safe horizon for registered domains.
	DefaultCacheTTL = 24 * time.Hour

	// DefaultErrorTTL bounds how long a failed lookup suppresses repeat
	// attempts against the same domain. Much shorter than DefaultCacheTTL
	// so transient upstream outages don't pin stale failures for a day.
	DefaultErrorTTL = time.Hour

	// DefaultMaxSuggestions is the default number of name suggestions
	// returned by a single generator run.
	DefaultMaxSuggestions = 20

	// DefaultMinScore is the default quality threshold for generated names.
	// Names scoring below this are dropped before ranking.
	DefaultMinScore = 55

	// MinCheckNameLen and MaxCheckNameLen bound names accepted for
	// availability checks from the CLI and the API. Wider than the
	// generator's candidate window since users may check names they
	// brought themselves; 63 is the DNS label limit.
	MinCheckNameLen = 2
	MaxCheckNameLen = 63

	// DefaultMaxConcurrent is the default availability check window size.
	// All lookups inside one window run concurrently; windows are processed
	// sequentially with a hard barrier between them.
	DefaultMaxConcurrent = 10

	// DefaultLookupTimeout bounds a single RDAP or WHOIS attempt.
	DefaultLookupTimeout = 5 * time.Second

	// DefaultMaxRetries is how many times a failed lookup attempt is retried
	// before the domain is recorded as an error result.
	DefaultMaxRetries = 3

	// DefaultRetryDelay is the base backoff delay; attempt N sleeps
	// DefaultRetryDelay * 2^N before retrying.
	DefaultRetryDelay = 2 * time.Second

	// DefaultBatchDelay is the pause inserted between concurrency windows to
	// bound the request rate against upstream registries.
	DefaultBatchDelay = 200 * time.Millisecond
)

// DefaultTLDs is the TLD list used when a caller doesn't specify one.
// Ordered by how commonly each is wanted for product names.
var DefaultTLDs = []string{".com", ".io", ".dev", ".app", ".co"}
