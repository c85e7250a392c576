package analytics_controller

import (
	"net/http"
	"strconv"

	"github.com/Verdant-Commerce/verdant-storefront-backend/models"
	"github.com/Verdant-Commerce/verdant-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// GetTopRatedProducts godoc
// @Summary Get the top rated products
// @Description Ranks the current catalog snapshot by rating, best first
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Number of products" default(10)
// @Success 200 {object} models.ApiResponse{data=[]models.TopRatedProduct}
// @Router /admin/analytics/top-rated [get]
func GetTopRatedProducts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 || limit > 100 {
		limit = 10
	}

	snapshot := services.GetCatalogService().Products(c.Request.Context())
	top := services.ComputeTopRated(snapshot, limit)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Top rated products fetched successfully", top))
}
