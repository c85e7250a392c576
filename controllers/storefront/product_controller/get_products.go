package product_controller

import (
	"net/http"

	"github.com/Verdant-Commerce/verdant-storefront-backend/models"
	"github.com/Verdant-Commerce/verdant-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// GetStorefrontProducts godoc
// @Summary Get storefront products with filters
// @Description Retrieve the product listing with optional search, category, subcategory, price range, discount, rating, free-shipping and returnable filters. All active filters combine conjunctively.
// @Tags Storefront - Products
// @Produce json
// @Param q query string false "Search query (title or subcategory, case-insensitive)"
// @Param category query string false "Category (exact match)"
// @Param subcategory query string false "Subcategory (exact match)"
// @Param minPrice query number false "Minimum price" default(0)
// @Param maxPrice query number false "Maximum price" default(1000)
// @Param discount query int false "Minimum discount percentage"
// @Param rating query number false "Minimum rating"
// @Param freeShipping query bool false "Only free-shipping products"
// @Param returnable query bool false "Only returnable products"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse "Products fetched successfully"
// @Router /store/products [get]
func GetStorefrontProducts(c *gin.Context) {
	page, limit := parsePagination(c)
	criteria := parseCriteria(c)

	ctx := c.Request.Context()
	snapshot := services.GetCatalogService().Products(ctx)

	filtered := services.FilterProducts(snapshot, criteria)
	pageItems, meta := paginate(filtered, page, limit)

	// An empty page is a valid result; the client renders "no results"
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched successfully", pageItems, meta))
}
