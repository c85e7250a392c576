package product_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/Verdant-Commerce/verdant-storefront-backend/models"
	"github.com/Verdant-Commerce/verdant-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// GetStorefrontProductByID godoc
// @Summary Get a single storefront product
// @Description Retrieve one product by id from the product-listing service, with its image gallery
// @Tags Storefront - Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.ApiResponse "Product fetched successfully"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 502 {object} models.ApiResponse "Product service unavailable"
// @Router /store/products/{id} [get]
func GetStorefrontProductByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product id"))
		return
	}

	product, err := services.GetCatalogService().FetchProduct(c.Request.Context(), id)
	if err != nil {
		log.Printf("[store.product] lookup failed for id=%d: %v", id, err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", product))
}
