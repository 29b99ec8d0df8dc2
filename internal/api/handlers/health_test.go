package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

// TestHandleHealth tests the health endpoint response
func TestHandleHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	startTime := time.Now().Add(-5 * time.Minute)
	router := gin.New()
	router.GET("/health", HandleHealth("0.1.0-test", startTime))

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.Status != "healthy" {
		t.Errorf("Expected status 'healthy', got %q", response.Status)
	}
	if response.Version != "0.1.0-test" {
		t.Errorf("Expected version '0.1.0-test', got %q", response.Version)
	}
	if response.Uptime == "" {
		t.Error("Expected non-empty uptime")
	}

	uptime, err := time.ParseDuration(response.Uptime)
	if err != nil {
		t.Fatalf("Uptime %q is not a valid duration: %v", response.Uptime, err)
	}
	if uptime < 5*time.Minute {
		t.Errorf("Expected uptime >= 5m, got %v", uptime)
	}
}
