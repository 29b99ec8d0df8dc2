// Package handlers provides HTTP request handlers for the NameForge API.
//
// This file implements the name generation endpoint, which turns a project
// description into ranked, scored name suggestions without touching the
// network.
//
// ENDPOINTS:
//   - POST /api/v1/generate: Generate scored name suggestions
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nameforge-dev/nameforge/internal/generate"
)

// GenerateRequest is the generation endpoint request body.
type GenerateRequest struct {
	Description    string `json:"description" binding:"required"`
	MaxSuggestions int    `json:"maxSuggestions"`
	MinScore       int    `json:"minScore"`
	ByGrade        bool   `json:"byGrade"`
}

// HandleGenerate returns scored name suggestions for a description
func HandleGenerate() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req GenerateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid request body: " + err.Error(),
			})
			return
		}

		opts := generate.Options{
			MaxSuggestions: req.MaxSuggestions,
			MinScore:       req.MinScore,
		}

		if req.ByGrade {
			buckets, err := generate.GenerateByGrade(req.Description, opts)
			if err != nil {
				respondGenerateError(c, err)
				return
			}
			c.JSON(http.StatusOK, gin.H{
				"status": "success",
				"data":   buckets,
				"count":  len(buckets.All),
			})
			return
		}

		suggestions, err := generate.Generate(req.Description, opts)
		if err != nil {
			respondGenerateError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "success",
			"data":   suggestions,
			"count":  len(suggestions),
		})
	}
}

// respondGenerateError maps generation errors to HTTP statuses. A
// description with no usable keywords is a client problem, not a server one.
func respondGenerateError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, generate.ErrNoKeywords) {
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{
		"status":  "error",
		"message": err.Error(),
	})
}
