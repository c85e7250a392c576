package admin_routes

import (
	"github.com/Verdant-Commerce/verdant-storefront-backend/controllers/admin/analytics_controller"
	"github.com/Verdant-Commerce/verdant-storefront-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAnalyticsRoutes registers the admin dashboard routes. The whole
// group is auth + role gated, and admin mutations are audit-logged.
func SetupAnalyticsRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminOnly())
	admin.Use(middleware.ActivityLoggingMiddleware())

	analytics := admin.Group("/analytics")
	{
		analytics.GET("/overview", analytics_controller.GetAnalyticsOverview)
		analytics.GET("/monthly-revenue", analytics_controller.GetMonthlyRevenue)
		analytics.GET("/monthly-sales", analytics_controller.GetMonthlySales)
		analytics.GET("/daily-growth", analytics_controller.GetDailyGrowth)
		analytics.GET("/top-rated", analytics_controller.GetTopRatedProducts)
		analytics.GET("/most-sold", analytics_controller.GetMostSoldProducts)
	}

	admin.GET("/orders", analytics_controller.GetOrders)
}
