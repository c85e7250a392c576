package analytics_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/Verdant-Commerce/verdant-storefront-backend/models"
	"github.com/Verdant-Commerce/verdant-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// GetMonthlyRevenue godoc
// @Summary Get monthly revenue for last 12 months
// @Description Returns revenue data for the last 12 months for chart visualization; months without orders are zero-filled
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.MonthlyRevenueData}
// @Router /admin/analytics/monthly-revenue [get]
func GetMonthlyRevenue(c *gin.Context) {
	log.Printf("[admin.analytics-monthly-revenue] start")

	orders := services.GetOrderLog().All()
	series := services.ComputeMonthlyRevenue(orders, time.Now())

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Monthly revenue fetched successfully", series))
}
