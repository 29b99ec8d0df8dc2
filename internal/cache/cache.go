// Package cache provides the persisted availability cache for NameForge,
// storing prior domain lookup verdicts with time-based expiry so repeat
// checks never hit the network inside the trust window.
//
// CACHING ARCHITECTURE:
// The cache is a mutex-guarded in-memory map with a JSON snapshot on disk:
//
//   - Memory map: lowercased domain -> verdict + expiry timestamp
//   - Lazy expiry: expired entries behave as misses and are evicted on read
//   - Write-behind persistence: snapshots are written after every N writes
//     rather than per-call, with an explicit Flush for durability barriers
//   - Crash safety: snapshots go to a temp file and rename into place
//
// FAILURE RECOVERY:
// A corrupt or unreadable snapshot never crashes the process. Loading falls
// back to an empty cache with a logged warning; the next flush overwrites
// the bad file.
//
// Multi-process access to one snapshot file is not supported - the cache
// assumes a single writer.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nameforge-dev/nameforge/internal/config"
	"github.com/nameforge-dev/nameforge/internal/logging"
)

// Verdict is the stored availability determination for one domain.
// Available is tri-state: true (confirmed free), false (confirmed
// registered), nil (indeterminate).
type Verdict struct {
	Available *bool  `json:"available"`
	Status    string `json:"status"`
	Method    string `json:"method"`
	Error     string `json:"error,omitempty"`
}

// entry wraps a verdict with its expiry deadline for persistence.
type entry struct {
	Data      Verdict   `json:"data"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Config holds cache tuning parameters. Zero values fall back to the
// project defaults.
type Config struct {
	Path       string        `json:"path"`        // Snapshot file location
	DefaultTTL time.Duration `json:"default_ttl"` // Entry lifetime when Set is used
	FlushEvery int           `json:"flush_every"` // Writes between automatic snapshots
}

// Stats holds cache performance counters for monitoring and CLI display.
type Stats struct {
	HitCount   int64 `json:"hit_count"`   // Reads served from a live entry
	MissCount  int64 `json:"miss_count"`  // Reads with no usable entry
	Evictions  int64 `json:"evictions"`   // Expired entries removed on read
	Entries    int   `json:"entries"`     // Current live entry count
	DirtySince int   `json:"dirty_since"` // Writes since the last snapshot
}

// Cache is the availability verdict store. Safe for concurrent use within
// one process.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	config  Config
	dirty   int // writes since last successful snapshot

	// Performance counters (atomic for lock-free reads)
	hitCount  int64
	missCount int64
	evictions int64
}

// DefaultPath returns the standard snapshot location under the user cache
// directory, falling back to the working directory when the user cache dir
// cannot be resolved.
func DefaultPath() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return config.DefaultCacheFile
	}
	return filepath.Join(base, config.DefaultCacheFile)
}

// New creates a cache backed by the given config and loads any previously
// persisted snapshot. A missing snapshot means a cold start; a corrupt one
// is discarded with a warning.
func New(cfg Config) *Cache {
	if cfg.Path == "" {
		cfg.Path = DefaultPath()
	}
	if cfg.DefaultTTL <= 0 {
		cfg.DefaultTTL = config.DefaultCacheTTL
	}
	if cfg.FlushEvery <= 0 {
		cfg.FlushEvery = 20
	}

	c := &Cache{
		entries: make(map[string]entry),
		config:  cfg,
	}
	c.load()
	return c
}

// Get returns the stored verdict for a domain, or ok=false on a miss.
// An expired entry behaves exactly like a miss and is evicted in place.
func (c *Cache) Get(domain string) (Verdict, bool) {
	key := normalizeKey(domain)

	c.mu.RLock()
	e, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists {
		atomic.AddInt64(&c.missCount, 1)
		return Verdict{}, false
	}

	if time.Now().After(e.ExpiresAt) {
		// Lazy eviction: re-check under the write lock in case another
		// reader already evicted or a writer refreshed the entry
		c.mu.Lock()
		if cur, still := c.entries[key]; still && time.Now().After(cur.ExpiresAt) {
			delete(c.entries, key)
			atomic.AddInt64(&c.evictions, 1)
			// The next snapshot must not resurrect the evicted entry
			c.dirty++
		}
		c.mu.Unlock()

		atomic.AddInt64(&c.missCount, 1)
		return Verdict{}, false
	}

	atomic.AddInt64(&c.hitCount, 1)
	return e.Data, true
}

// Set stores a verdict under the default TTL.
func (c *Cache) Set(domain string, v Verdict) {
	c.SetTTL(domain, v, c.config.DefaultTTL)
}

// SetTTL stores a verdict with an explicit lifetime. Used by the checker to
// give failed lookups a shorter suppression window than confirmed verdicts.
func (c *Cache) SetTTL(domain string, v Verdict, ttl time.Duration) {
	key := normalizeKey(domain)

	c.mu.Lock()
	c.entries[key] = entry{
		Data:      v,
		ExpiresAt: time.Now().Add(ttl),
	}
	c.dirty++
	needFlush := c.dirty >= c.config.FlushEvery
	c.mu.Unlock()

	if needFlush {
		if err := c.Flush(); err != nil {
			logging.Warn("Availability cache snapshot failed: %v", err)
		}
	}
}

// Has reports whether a live (non-expired) entry exists for a domain.
func (c *Cache) Has(domain string) bool {
	key := normalizeKey(domain)

	c.mu.RLock()
	e, exists := c.entries[key]
	c.mu.RUnlock()

	return exists && time.Now().Before(e.ExpiresAt)
}

// Delete removes a domain's entry if present.
func (c *Cache) Delete(domain string) {
	key := normalizeKey(domain)

	c.mu.Lock()
	if _, exists := c.entries[key]; exists {
		delete(c.entries, key)
		c.dirty++
	}
	c.mu.Unlock()
}

// Clear removes every entry and snapshots the empty state so a cleared
// cache stays cleared across restarts.
func (c *Cache) Clear() error {
	c.mu.Lock()
	count := len(c.entries)
	c.entries = make(map[string]entry)
	c.dirty++
	c.mu.Unlock()

	if count > 0 {
		logging.Info("Cleared %d availability cache entries", count)
	}
	return c.Flush()
}

// Cleanup sweeps all expired entries out of the map and returns how many
// were removed. Expiry is normally lazy; this is the explicit sweep for
// operators who want the snapshot compacted.
func (c *Cache) Cleanup() int {
	now := time.Now()

	c.mu.Lock()
	removed := 0
	for key, e := range c.entries {
		if now.After(e.ExpiresAt) {
			delete(c.entries, key)
			removed++
		}
	}
	if removed > 0 {
		c.dirty++
	}
	c.mu.Unlock()

	if removed > 0 {
		atomic.AddInt64(&c.evictions, int64(removed))
		logging.Debug("Swept %d expired availability cache entries", removed)
	}
	return removed
}

// Flush writes the current cache contents to the snapshot file. Durable on
// return: the snapshot is written to a temp file and renamed into place.
func (c *Cache) Flush() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(c.config.Path), 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	data, err := json.MarshalIndent(c.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode cache snapshot: %w", err)
	}

	tmp := c.config.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cache snapshot: %w", err)
	}
	if err := os.Rename(tmp, c.config.Path); err != nil {
		return fmt.Errorf("failed to replace cache snapshot: %w", err)
	}

	c.dirty = 0
	return nil
}

// GetStats returns a point-in-time view of cache performance counters.
func (c *Cache) GetStats() Stats {
	c.mu.RLock()
	entries := len(c.entries)
	dirty := c.dirty
	c.mu.RUnlock()

	return Stats{
		HitCount:   atomic.LoadInt64(&c.hitCount),
		MissCount:  atomic.LoadInt64(&c.missCount),
		Evictions:  atomic.LoadInt64(&c.evictions),
		Entries:    entries,
		DirtySince: dirty,
	}
}

// load reads the persisted snapshot into memory. Missing files are a normal
// cold start; unreadable or corrupt files fall back to an empty cache with
// a warning so a damaged snapshot never takes the process down.
func (c *Cache) load() {
	data, err := os.ReadFile(c.config.Path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Warn("Failed to read availability cache at %s: %v", c.config.Path, err)
		}
		return
	}

	var loaded map[string]entry
	if err := json.Unmarshal(data, &loaded); err != nil {
		logging.Warn("Corrupt availability cache at %s, starting empty: %v", c.config.Path, err)
		return
	}

	c.entries = loaded
	if c.entries == nil {
		c.entries = make(map[string]entry)
	}
	logging.Debug("Loaded %d availability cache entries from %s", len(c.entries), c.config.Path)
}

// normalizeKey lowercases a domain for case-insensitive cache keys.
func normalizeKey(domain string) string {
	return strings.ToLower(domain)
}
