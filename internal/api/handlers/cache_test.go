package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nameforge-dev/nameforge/internal/cache"
)

func newHandlerCache(t *testing.T) *cache.Cache {
	t.Helper()
	return cache.New(cache.Config{
		Path:       filepath.Join(t.TempDir(), "availability.json"),
		DefaultTTL: time.Hour,
	})
}

// TestHandleCacheStats tests the cache statistics endpoint
func TestHandleCacheStats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c := newHandlerCache(t)
	c.Set("taskify.com", cache.Verdict{Status: "available"})
	c.Get("taskify.com")
	c.Get("missing.com")

	router := gin.New()
	router.GET("/cache/stats", HandleCacheStats(c))

	req := httptest.NewRequest("GET", "/cache/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Status string      `json:"status"`
		Data   cache.Stats `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.Status != "success" {
		t.Errorf("Expected status 'success', got %q", response.Status)
	}
	if response.Data.Entries != 1 {
		t.Errorf("Expected 1 entry, got %d", response.Data.Entries)
	}
	if response.Data.HitCount != 1 {
		t.Errorf("Expected 1 hit, got %d", response.Data.HitCount)
	}
	if response.Data.MissCount != 1 {
		t.Errorf("Expected 1 miss, got %d", response.Data.MissCount)
	}
}

// TestHandleCacheClear tests cache invalidation via the API
func TestHandleCacheClear(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c := newHandlerCache(t)
	c.Set("taskify.com", cache.Verdict{Status: "available"})
	c.Set("forge.io", cache.Verdict{Status: "registered"})

	router := gin.New()
	router.DELETE("/cache", HandleCacheClear(c))

	req := httptest.NewRequest("DELETE", "/cache", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	if stats := c.GetStats(); stats.Entries != 0 {
		t.Errorf("Expected 0 entries after clear, got %d", stats.Entries)
	}
	if c.Has("taskify.com") {
		t.Error("Expected taskify.com to be gone after clear")
	}
}
