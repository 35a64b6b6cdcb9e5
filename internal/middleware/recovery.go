package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/samuelzcom/berlin-time-format-service/internal/logger"
	"github.com/samuelzcom/berlin-time-format-service/internal/metrics"
)

// RecoveryBody is the plain-text body returned after a recovered panic.
const RecoveryBody = "Internal Server Error"

// Recovery returns a Gin middleware that turns a panic into a 500 response.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.ErrorContext(c.Request.Context(), "panic recovered",
					slog.String("path", c.Request.URL.Path),
					slog.String("method", c.Request.Method),
					slog.String("error", fmt.Sprint(err)),
					slog.String("stack", string(debug.Stack())),
					slog.String("request_id", GetRequestID(c)),
				)

				metrics.HTTPPanicsRecovered.Inc()

				c.Abort()
				if !c.Writer.Written() {
					c.String(http.StatusInternalServerError, "%s", RecoveryBody)
				}
			}
		}()

		c.Next()
	}
}
