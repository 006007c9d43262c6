package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"staffdir-system/internal/utils"
)

// JWTAuth verifies the bearer token issued after sign-on and stores the
// authenticated subject on the request context. Only company creation is
// gated; the rest of the directory is open to the client.
func JWTAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "missing or malformed authorization header",
			})
			return
		}

		claims, err := utils.ParseToken(secret, strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "invalid or expired token",
			})
			return
		}

		c.Set("auth_subject", claims.Subject)
		c.Next()
	}
}
