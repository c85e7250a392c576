package analytics_controller

import (
	"net/http"

	"github.com/Verdant-Commerce/verdant-storefront-backend/models"
	"github.com/Verdant-Commerce/verdant-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// GetAnalyticsOverview godoc
// @Summary Get the analytics dashboard overview
// @Description Returns order count, revenue, items sold and average order value across all recorded orders
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.AnalyticsOverview}
// @Router /admin/analytics/overview [get]
func GetAnalyticsOverview(c *gin.Context) {
	orders := services.GetOrderLog().All()
	overview := services.ComputeOverview(orders)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Analytics overview fetched successfully", overview))
}
