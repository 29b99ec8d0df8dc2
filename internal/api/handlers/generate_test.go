package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newGenerateRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/generate", HandleGenerate())
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// TestHandleGenerate tests the happy path for name generation
func TestHandleGenerate(t *testing.T) {
	router := newGenerateRouter()

	w := postJSON(t, router, "/generate", `{"description": "task manager for teams", "maxSuggestions": 5}`)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var response struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
		Data   []struct {
			Name    string `json:"name"`
			Score   int    `json:"score"`
			Scoring struct {
				Grade string `json:"grade"`
			} `json:"scoring"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.Status != "success" {
		t.Errorf("Expected status 'success', got %q", response.Status)
	}
	if response.Count == 0 {
		t.Error("Expected at least one suggestion")
	}
	if response.Count > 5 {
		t.Errorf("Expected at most 5 suggestions, got %d", response.Count)
	}
	if len(response.Data) != response.Count {
		t.Errorf("Count %d does not match data length %d", response.Count, len(response.Data))
	}
	for _, s := range response.Data {
		if s.Name == "" {
			t.Error("Suggestion has empty name")
		}
		if s.Scoring.Grade == "" {
			t.Errorf("Suggestion %q has empty grade", s.Name)
		}
	}
}

// TestHandleGenerateByGrade tests grade-bucketed generation
func TestHandleGenerateByGrade(t *testing.T) {
	router := newGenerateRouter()

	w := postJSON(t, router, "/generate", `{"description": "cloud data sync service", "byGrade": true}`)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var response struct {
		Status string          `json:"status"`
		Data   json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Status != "success" {
		t.Errorf("Expected status 'success', got %q", response.Status)
	}
	if !strings.Contains(string(response.Data), "premium") {
		t.Error("Expected grade buckets in response data")
	}
}

// TestHandleGenerateErrors tests client error handling
func TestHandleGenerateErrors(t *testing.T) {
	router := newGenerateRouter()

	tests := []struct {
		name        string
		body        string
		description string
	}{
		{
			name:        "missing description",
			body:        `{"maxSuggestions": 5}`,
			description: "description is a required field",
		},
		{
			name:        "malformed json",
			body:        `{"description": `,
			description: "truncated body should be rejected",
		},
		{
			name:        "no usable keywords",
			body:        `{"description": "a an the for"}`,
			description: "stopword-only description yields no keywords",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, router, "/generate", tt.body)

			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d: %s", w.Code, w.Body.String())
			}

			var response struct {
				Status string `json:"status"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
				t.Fatalf("Failed to unmarshal response: %v", err)
			}
			if response.Status != "error" {
				t.Errorf("Expected status 'error', got %q", response.Status)
			}
		})
	}
}
