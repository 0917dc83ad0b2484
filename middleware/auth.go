package middleware

import (
	"net/http"
	"strings"

	"dateme/auth"

	"github.com/gin-gonic/gin"
)

// RequireAuth guards protected routes. Clients send the signed token in
// the Authorization header, either raw or with a "Bearer " prefix; both
// forms are accepted. On success the resolved userID lands in the Gin
// context for the handler.
func RequireAuth(tm *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip for OPTIONS requests (CORS preflight)
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		token := strings.TrimSpace(c.GetHeader("Authorization"))
		token = strings.TrimPrefix(token, "Bearer ")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "No token"})
			c.Abort()
			return
		}

		userID, err := tm.Verify(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
