// Availability endpoints: check explicit names against a TLD list, or run
// the full hunt pipeline (generate from description, then check the winners).
//
// ENDPOINTS:
//   - POST /api/v1/check: Check name x TLD availability
//   - POST /api/v1/hunt: Generate names and check their availability
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nameforge-dev/nameforge/internal/checker"
	"github.com/nameforge-dev/nameforge/internal/config"
	"github.com/nameforge-dev/nameforge/internal/generate"
	"github.com/nameforge-dev/nameforge/internal/validate"
)

// CheckRequest is the availability check request body.
type CheckRequest struct {
	Names []string `json:"names" binding:"required,min=1"`
	TLDs  []string `json:"tlds"`
}

// HuntRequest is the hunt pipeline request body.
type HuntRequest struct {
	Description    string   `json:"description" binding:"required"`
	TLDs           []string `json:"tlds"`
	MaxSuggestions int      `json:"maxSuggestions"`
	MinScore       int      `json:"minScore"`
}

// CheckResponse carries batch results grouped by verdict alongside the flat
// positional list.
type CheckResponse struct {
	Results []checker.Result `json:"results"`
	Grouped checker.Grouped  `json:"grouped"`
}

// HuntResponse pairs the generated suggestions with their availability.
type HuntResponse struct {
	Suggestions []generate.Suggestion `json:"suggestions"`
	Results     []checker.Result      `json:"results"`
	Grouped     checker.Grouped       `json:"grouped"`
}

// HandleCheck checks availability for explicit names across TLDs
func HandleCheck(ch *checker.Checker) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid request body: " + err.Error(),
			})
			return
		}

		names, tlds, err := normalizeCheckInput(req.Names, req.TLDs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": err.Error(),
			})
			return
		}

		results := ch.CheckAvailability(c.Request.Context(), names, tlds, nil)
		c.JSON(http.StatusOK, gin.H{
			"status": "success",
			"data": CheckResponse{
				Results: results,
				Grouped: checker.GroupByStatus(results),
			},
			"count": len(results),
		})
	}
}

// HandleHunt generates names for a description and checks their availability
func HandleHunt(ch *checker.Checker) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req HuntRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid request body: " + err.Error(),
			})
			return
		}

		tlds := req.TLDs
		if len(tlds) == 0 {
			tlds = config.DefaultTLDs
		}
		if err := validate.TLDList(tlds); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": err.Error(),
			})
			return
		}

		suggestions, err := generate.Generate(req.Description, generate.Options{
			MaxSuggestions: req.MaxSuggestions,
			MinScore:       req.MinScore,
		})
		if err != nil {
			respondGenerateError(c, err)
			return
		}

		names := make([]string, len(suggestions))
		for i, s := range suggestions {
			names[i] = s.Name
		}

		results := ch.CheckAvailability(c.Request.Context(), names, tlds, nil)
		c.JSON(http.StatusOK, gin.H{
			"status": "success",
			"data": HuntResponse{
				Suggestions: suggestions,
				Results:     results,
				Grouped:     checker.GroupByStatus(results),
			},
			"count": len(results),
		})
	}
}

// normalizeCheckInput lowercases names, applies the default TLD list, and
// validates both before any network work starts.
func normalizeCheckInput(names, tlds []string) ([]string, []string, error) {
	normalized := make([]string, len(names))
	for i, name := range names {
		normalized[i] = strings.ToLower(strings.TrimSpace(name))
		if err := validate.CandidateName(normalized[i], config.MinCheckNameLen, config.MaxCheckNameLen); err != nil {
			return nil, nil, err
		}
	}

	if len(tlds) == 0 {
		tlds = config.DefaultTLDs
	}
	if err := validate.TLDList(tlds); err != nil {
		return nil, nil, err
	}

	return normalized, tlds, nil
}
