package analytics_controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Verdant-Commerce/verdant-storefront-backend/models"
	"github.com/Verdant-Commerce/verdant-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// GetDailyGrowth godoc
// @Summary Get daily order counts
// @Description Returns order counts per day for the requested window (default 30 days), oldest first, zero-filled
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Param days query int false "Window size in days" default(30)
// @Success 200 {object} models.ApiResponse{data=[]models.DailyGrowthData}
// @Router /admin/analytics/daily-growth [get]
func GetDailyGrowth(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	if days < 1 || days > 365 {
		days = 30
	}

	orders := services.GetOrderLog().All()
	series := services.ComputeDailyGrowth(orders, time.Now(), days)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Daily growth fetched successfully", series))
}
