// ABOUTME: HTTP middleware for the API server.
// ABOUTME: Request logging via zerolog with method, path, status, and latency.
package api

import (
	"time"

	"github.com/gin-gonic/gin"
)

// requestLogger logs one line per request.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		s.logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
