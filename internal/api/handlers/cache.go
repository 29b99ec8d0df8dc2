// Cache management endpoints: hit/miss statistics and full invalidation.
//
// ENDPOINTS:
//   - GET /api/v1/cache/stats: Cache statistics
//   - DELETE /api/v1/cache: Clear all cached verdicts
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nameforge-dev/nameforge/internal/cache"
)

// HandleCacheStats returns availability cache statistics
func HandleCacheStats(c *cache.Cache) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status": "success",
			"data":   c.GetStats(),
		})
	}
}

// HandleCacheClear drops every cached verdict and persists the empty state
func HandleCacheClear(c *cache.Cache) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.Clear(); err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to clear cache: " + err.Error(),
			})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Cache cleared",
		})
	}
}
