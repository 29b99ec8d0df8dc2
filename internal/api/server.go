// Package api provides the HTTP API server for NameForge. The server
// exposes name generation, availability checking, and cache management via
// REST endpoints, allowing CLI tools and other clients to drive the pipeline
// without linking it in-process.
package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nameforge-dev/nameforge/internal/api/handlers"
	"github.com/nameforge-dev/nameforge/internal/cache"
	"github.com/nameforge-dev/nameforge/internal/checker"
	"github.com/nameforge-dev/nameforge/internal/logging"
	"github.com/nameforge-dev/nameforge/internal/version"
)

// Server is the NameForge API server.
type Server struct {
	cache      *cache.Cache
	checker    *checker.Checker
	httpServer *http.Server
	bindAddr   string
	bindPort   int
}

// NewServer creates a new API server instance from a validated config.
func NewServer(config *Config) *Server {
	// Set Gin to release mode for production
	gin.SetMode(gin.ReleaseMode)

	return &Server{
		cache:    config.Cache,
		checker:  config.Checker,
		bindAddr: config.BindAddr,
		bindPort: config.BindPort,
	}
}

// Start starts the API server.
func (s *Server) Start() error {
	logging.Info("Starting HTTP API server on %s:%d", s.bindAddr, s.bindPort)

	router := gin.New()

	// Route gin's own output through the shared logger
	gin.DefaultWriter = logging.NewLevelWriter("INFO", "gin")
	gin.DefaultErrorWriter = logging.NewLevelWriter("ERROR", "gin")

	router.Use(s.requestLogger())
	router.Use(s.corsMiddleware())
	router.Use(gin.Recovery())

	s.setupRoutes(router)

	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", s.bindAddr, s.bindPort),
		Handler: router,
		// Generation plus a full availability batch can take a while, so the
		// write timeout is generous compared to typical API servers
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Test binding first to catch errors immediately
	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to bind to %s: %w", s.httpServer.Addr, err)
	}
	listener.Close()

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Error("HTTP server failed: %v", err)
		}
	}()

	logging.Success("HTTP API server started successfully")
	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down HTTP API server...")

	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}

	return nil
}

var startTime = time.Now() // Track server start time for uptime calculation

// handleHealth delegates to handlers.HandleHealth
func (s *Server) handleHealth(c *gin.Context) {
	handlers.HandleHealth(version.NameforgedVersion, startTime)(c)
}

// handleGenerate delegates to handlers.HandleGenerate
func (s *Server) handleGenerate(c *gin.Context) {
	handlers.HandleGenerate()(c)
}

// handleCheck delegates to handlers.HandleCheck
func (s *Server) handleCheck(c *gin.Context) {
	handlers.HandleCheck(s.checker)(c)
}

// handleHunt delegates to handlers.HandleHunt
func (s *Server) handleHunt(c *gin.Context) {
	handlers.HandleHunt(s.checker)(c)
}

// handleCacheStats delegates to handlers.HandleCacheStats
func (s *Server) handleCacheStats(c *gin.Context) {
	handlers.HandleCacheStats(s.cache)(c)
}

// handleCacheClear delegates to handlers.HandleCacheClear
func (s *Server) handleCacheClear(c *gin.Context) {
	handlers.HandleCacheClear(s.cache)(c)
}
