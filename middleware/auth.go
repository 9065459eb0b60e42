package middleware

import (
	"net/http"
	"strings"

	"canteen-backend/models"
	"canteen-backend/utils"

	"github.com/gin-gonic/gin"
)

// Authentication validates the bearer token and stores the actor's id, name
// and role on the context. Identity is resolved here once; handlers and
// services work with the opaque uid only.
func Authentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if token == "" {
			// Accept the bare "token" header as well.
			token = strings.TrimSpace(c.GetHeader("token"))
		}
		if token == "" {
			utils.JSONError(c, http.StatusUnauthorized, "missing auth token")
			c.Abort()
			return
		}
		claims, err := utils.ValidateToken(token)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}
		c.Set("uid", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// RequireElevated gates routes to STAFF/ADMIN actors.
func RequireElevated() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if !models.IsElevated(role) {
			utils.JSONError(c, http.StatusForbidden, "staff role required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// ActorID returns the authenticated user's id from the context.
func ActorID(c *gin.Context) uint {
	if v, ok := c.Get("uid"); ok {
		if id, ok2 := v.(uint); ok2 {
			return id
		}
	}
	return 0
}
