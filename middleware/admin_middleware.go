package middleware

import (
	"log"
	"net/http"

	"github.com/Verdant-Commerce/verdant-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// AdminOnly gates a route group to admin accounts. Must be used AFTER
// AuthMiddleware, which puts the role claim into the context.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRoleFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - no session"))
			c.Abort()
			return
		}

		if role != models.RoleAdmin {
			email, _ := GetUserEmailFromContext(c)
			log.Printf("[auth] access denied for %s (role %s) on %s", email, role, c.FullPath())
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Access denied - admin only"))
			c.Abort()
			return
		}

		c.Next()
	}
}
