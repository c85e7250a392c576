package storefront_routes

import (
	"github.com/Verdant-Commerce/verdant-storefront-backend/controllers/storefront/preference_controller"
	"github.com/Verdant-Commerce/verdant-storefront-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupPreferenceRoutes registers the per-user presentation preference routes
func SetupPreferenceRoutes(router *gin.RouterGroup) {
	prefs := router.Group("/preferences")
	prefs.Use(middleware.AuthMiddleware())
	{
		prefs.GET("", preference_controller.GetPreferences)
		prefs.POST("/theme", preference_controller.ToggleTheme)
	}
}
