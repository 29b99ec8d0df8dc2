package api

import (
	"github.com/gin-gonic/gin"
)

// Configures all API routes
func (s *Server) setupRoutes(router *gin.Engine) {
	// API version prefix
	v1 := router.Group("/api/v1")

	// Health check endpoint
	v1.GET("/health", s.handleHealth)

	// Name pipeline endpoints
	v1.POST("/generate", s.handleGenerate)
	v1.POST("/check", s.handleCheck)
	v1.POST("/hunt", s.handleHunt)

	// Cache management endpoints
	cacheGroup := v1.Group("/cache")
	{
		cacheGroup.GET("/stats", s.handleCacheStats)
		cacheGroup.DELETE("", s.handleCacheClear)
	}
}
