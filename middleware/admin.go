package middleware

import (
	"net/http"

	userRepo "docportal/database/repository/user"
	"docportal/models"

	"github.com/gin-gonic/gin"
)

// Allowed is the single authorization-policy decision point. Every guarded
// route answers "may this user exercise this capability" here rather than
// comparing role strings inline.
func Allowed(user *models.User, capability string) bool {
	if user == nil {
		return false
	}
	switch capability {
	case "admin":
		return user.IsAdmin()
	default:
		return false
	}
}

// RequireCapability looks up the caller's stored record and applies the
// authorization policy. Requires JWTAuthMiddleware to have run first.
// A caller with no user record is rejected outright.
func RequireCapability(users userRepo.UserRepository, capability string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := CallerEmail(c)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing caller identity"})
			return
		}

		user, err := users.GetByEmail(email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Failed to verify caller role"})
			return
		}
		if !Allowed(user, capability) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden: insufficient role"})
			return
		}

		c.Next()
	}
}

// RequireAdmin guards admin-only routes.
func RequireAdmin(users userRepo.UserRepository) gin.HandlerFunc {
	return RequireCapability(users, "admin")
}
