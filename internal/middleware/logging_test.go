package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestRecovery_LogsStackTrace(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	r := gin.New()
	r.Use(Recovery(logger))
	r.GET("/boom", func(c *gin.Context) {
		panic("kaboom")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// The client gets a generic 500 with no error detail.
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "Internal Server Error")
	require.NotContains(t, w.Body.String(), "kaboom")

	// The log carries the panic value and the full stack trace.
	logged := buf.String()
	require.Contains(t, logged, "kaboom")
	require.Contains(t, logged, "goroutine")
	require.Contains(t, logged, "logging_test.go")
}

func TestRequestLogger_LogsRequest(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	r := gin.New()
	r.Use(RequestLogger(logger))
	r.GET("/poll", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello World")
	})

	req := httptest.NewRequest(http.MethodGet, "/poll", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	logged := buf.String()
	require.Contains(t, logged, `"method":"GET"`)
	require.Contains(t, logged, `"path":"/poll"`)
	require.Contains(t, logged, `"status":200`)
}
