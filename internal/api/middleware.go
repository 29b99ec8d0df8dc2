// Request middleware for the NameForge API: access logging routed through the
// shared logger and permissive CORS so browser-based tooling can call the
// daemon directly.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nameforge-dev/nameforge/internal/logging"
)

// requestLogger emits one access-log line per request through the shared
// logger so daemon output stays on a single level-filtered stream.
func (s *Server) requestLogger() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		logging.Info("%s %s %s -> %d (%s) %s",
			param.ClientIP,
			param.Method,
			param.Path,
			param.StatusCode,
			param.Latency,
			param.ErrorMessage,
		)
		return ""
	})
}

// corsMiddleware allows any origin. The API carries no credentials or
// session state, so a wildcard policy is safe here.
func (s *Server) corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Accept, Content-Type")
		c.Header("Access-Control-Max-Age", "300")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
