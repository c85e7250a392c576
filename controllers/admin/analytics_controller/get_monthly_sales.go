package analytics_controller

import (
	"net/http"
	"time"

	"github.com/Verdant-Commerce/verdant-storefront-backend/models"
	"github.com/Verdant-Commerce/verdant-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// GetMonthlySales godoc
// @Summary Get monthly order counts for last 12 months
// @Description Returns the number of orders placed per month for chart visualization; missing months are zero-filled
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.MonthlySalesData}
// @Router /admin/analytics/monthly-sales [get]
func GetMonthlySales(c *gin.Context) {
	orders := services.GetOrderLog().All()
	series := services.ComputeMonthlySales(orders, time.Now())

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Monthly sales fetched successfully", series))
}
