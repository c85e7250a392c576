package storefront_routes

import (
	"github.com/Verdant-Commerce/verdant-storefront-backend/controllers/storefront/auth_controller"
	"github.com/Verdant-Commerce/verdant-storefront-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up all authentication routes
func SetupAuthRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", auth_controller.Login)
		auth.POST("/register", auth_controller.RegisterCustomer)
		auth.POST("/register/admin", auth_controller.RegisterAdmin)

		auth.POST("/logout", middleware.AuthMiddleware(), auth_controller.Logout)
		auth.GET("/me", middleware.AuthMiddleware(), auth_controller.GetMe)
	}
}
