package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/samuelzcom/berlin-time-format-service/internal/logger"
)

// Logger returns a Gin middleware that writes one structured access log line
// per request. Server errors are logged at error level.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = UnmatchedPath
		}
		log := logger.WithRoute(route)

		status := c.Writer.Status()
		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("query", c.Request.URL.RawQuery),
			slog.Int("status", status),
			slog.Int("size", c.Writer.Size()),
			slog.Duration("latency", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
			slog.String("user_agent", c.Request.UserAgent()),
			slog.String("request_id", GetRequestID(c)),
		}

		if status >= 500 {
			log.ErrorContext(c.Request.Context(), "http request", attrs...)
			return
		}
		log.InfoContext(c.Request.Context(), "http request", attrs...)
	}
}
