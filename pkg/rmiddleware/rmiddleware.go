package rmiddleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/DhavalSuthar-24/cricsim/internal/middleware"
	"github.com/DhavalSuthar-24/cricsim/internal/user"
	"gorm.io/gorm"

	"github.com/gin-gonic/gin"
)

// RoleMiddleware admits callers holding any of requiredRoles. It must run after middleware.AuthMiddleware.
func RoleMiddleware(users user.UserRepository, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := middleware.GetUserIDFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
			return
		}

		userRoles, err := users.GetUserRoles(userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "User roles not found"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user roles"})
			return
		}

		if !hasAnyRole(userRoles, requiredRoles) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":      "Forbidden",
				"message":    "You don't have permission to access this resource",
				"required":   requiredRoles,
				"user_roles": userRoles,
			})
			return
		}

		c.Set("user_roles", userRoles)
		c.Next()
	}
}

func hasAnyRole(userRoles, requiredRoles []string) bool {
	for _, userRole := range userRoles {
		for _, requiredRole := range requiredRoles {
			if strings.EqualFold(userRole, requiredRole) {
				return true
			}
		}
	}
	return false
}

// AdminMiddleware is a convenience middleware for admin-only access
func AdminMiddleware(db *gorm.DB) gin.HandlerFunc {
	return RoleMiddleware(user.NewUserRepository(db), user.RoleAdmin)
}
