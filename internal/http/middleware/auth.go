package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"queryhub.app/api/common/logger"
	"queryhub.app/api/internal/service"
)

const userIDKey = "auth_user_id"

// RequireAuth rejects requests without a valid bearer token and stores the
// authenticated user id on the gin context.
func RequireAuth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		userID, err := auth.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(userIDKey, userID)
		ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{UserID: logger.Ptr(userID)})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// OptionalAuth resolves the user id when a valid bearer token is present
// but lets anonymous requests through.
func OptionalAuth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if userID, err := auth.ValidateToken(token); err == nil {
				c.Set(userIDKey, userID)
				ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{UserID: logger.Ptr(userID)})
				c.Request = c.Request.WithContext(ctx)
			}
		}
		c.Next()
	}
}

// UserID returns the authenticated user id set by RequireAuth/OptionalAuth.
func UserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return header[len(prefix):]
	}
	return ""
}
