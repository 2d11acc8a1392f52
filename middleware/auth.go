// middleware/auth.go
package middleware

import (
	"context"
	"net/http"
	"strings"

	"docportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// ContextEmailKey is the gin context key holding the authenticated caller's email.
const ContextEmailKey = "email"

// JWTAuthMiddleware verifies the bearer token and attaches the caller's email
// to the request context. A missing credential is 401; a credential that is
// present but fails verification is 403.
//
// When the Redis auth cache is reachable, the token hash is also checked
// against the hash stored at login so a later login invalidates earlier
// tokens. With no cache the check degrades to signature and expiry only.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing or invalid Authorization header"})
			return
		}

		email, err := utils.ExtractEmailFromToken(tokenString)
		if err != nil || email == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Invalid or expired token"})
			return
		}

		if authCache := utils.GetAuthCacheClient(); authCache != nil {
			cachedHash, err := authCache.Get(context.Background(), utils.AuthCachePrefix+email).Result()
			if err == nil && cachedHash != utils.HashToken(tokenString) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Token has been superseded"})
				return
			}
			if err != nil && err != redis.Nil {
				// Cache errors never block a validly signed token.
				utils.GetLogger().Sugar().Warnf("auth cache lookup failed: %v", err)
			}
		}

		c.Set(ContextEmailKey, email)
		c.Next()
	}
}

// CallerEmail returns the authenticated email set by JWTAuthMiddleware.
func CallerEmail(c *gin.Context) string {
	email, _ := c.Get(ContextEmailKey)
	if s, ok := email.(string); ok {
		return s
	}
	return ""
}
