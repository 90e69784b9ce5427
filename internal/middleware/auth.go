package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hospital-ops/ward-staffing-api/internal/auth"
	"github.com/hospital-ops/ward-staffing-api/internal/config"
	"github.com/hospital-ops/ward-staffing-api/internal/constants"
	"github.com/hospital-ops/ward-staffing-api/internal/httperr"
)

// RequireAuth verifies the bearer token on the Authorization header
// and stores the decoded claims on the request context. A missing or
// empty token is a 401; a token that fails verification is a 403 with
// the relogin hint. The secret is checked lazily here rather than at
// startup: running without one is a server configuration error.
func RequireAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "No token provided.")
			c.Abort()
			return
		}

		var token string
		if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 {
			token = parts[1]
		}
		if token == "" {
			httperr.Unauthorized(c, "Malformed token.")
			c.Abort()
			return
		}

		if cfg.JWTSecret == "" {
			httperr.InternalError(c, "JWT secret not configured.")
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(token, cfg.JWTSecret)
		if err != nil {
			httperr.ForbiddenRelogin(c, "Invalid token.")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyUserEmail, claims.Email)
		c.Next()
	}
}

// GetUserID retrieves the authenticated user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	id, ok := userID.(uint64)
	return id, ok
}
