package storefront_routes

import (
	"github.com/Verdant-Commerce/verdant-storefront-backend/controllers/storefront/product_controller"
	"github.com/gin-gonic/gin"
)

// SetupProductRoutes registers the public storefront product routes
func SetupProductRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	products := store.Group("/products")
	{
		products.GET("", product_controller.GetStorefrontProducts)        // List with filters
		products.GET("/:id", product_controller.GetStorefrontProductByID) // Single product with gallery
	}
}
