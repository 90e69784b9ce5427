package middleware

import (
	"io"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hospital-ops/ward-staffing-api/internal/httperr"
	"github.com/rs/zerolog"
)

// RequestLogger logs every request with method, path, status and
// latency. Request bodies are never logged; the auth endpoints carry
// plaintext credentials.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		event := logger.Info()
		if c.Writer.Status() >= http.StatusInternalServerError {
			event = logger.Error()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", c.Writer.Status()).
			Str("client_ip", c.ClientIP()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

// Recovery catches panics escaping a handler, logs the stack, and
// answers with a generic 500. No error detail reaches the client on
// this path.
func Recovery(logger zerolog.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		logger.Error().
			Interface("panic", recovered).
			Bytes("stack", debug.Stack()).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("recovered from panic")
		httperr.InternalError(c, "Internal Server Error")
		c.Abort()
	})
}
