package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the error body every endpoint returns: a human-readable
// message plus an error flag. Relogin is set only when the client must
// discard its token and authenticate again.
type Response struct {
	Message string `json:"message"`
	Error   bool   `json:"error"`
	Relogin bool   `json:"relogin,omitempty"`
}

func respond(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{Message: message, Error: true})
}

// BadRequest sends a 400 response.
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request"
	}
	respond(c, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 response.
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Authentication required"
	}
	respond(c, http.StatusUnauthorized, message)
}

// ForbiddenRelogin sends a 403 response carrying the relogin hint that
// tells the browser client to force re-authentication.
func ForbiddenRelogin(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, Response{Message: message, Error: true, Relogin: true})
}

// NotFound sends a 404 response.
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	respond(c, http.StatusNotFound, message)
}

// InternalError sends a 500 response.
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Internal Server Error"
	}
	respond(c, http.StatusInternalServerError, message)
}
