package analytics_controller

import (
	"net/http"
	"strconv"

	"github.com/Verdant-Commerce/verdant-storefront-backend/models"
	"github.com/Verdant-Commerce/verdant-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// GetMostSoldProducts godoc
// @Summary Get the most sold products
// @Description Aggregates sold quantities per product from the recorded orders, highest first
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Number of products" default(10)
// @Success 200 {object} models.ApiResponse{data=[]models.MostSoldProduct}
// @Router /admin/analytics/most-sold [get]
func GetMostSoldProducts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 || limit > 100 {
		limit = 10
	}

	orders := services.GetOrderLog().All()
	ranked := services.ComputeMostSold(orders, limit)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Most sold products fetched successfully", ranked))
}
