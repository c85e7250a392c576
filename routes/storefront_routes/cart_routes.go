package storefront_routes

import (
	"time"

	"github.com/Verdant-Commerce/verdant-storefront-backend/controllers/storefront/cart_controller"
	"github.com/Verdant-Commerce/verdant-storefront-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupCartRoutes registers the cart routes. Every cart operation sits
// behind the auth gate — an anonymous mutation is rejected before it
// reaches the cart service. The rate limiter coalesces rapid repeated
// clicks on the quantity buttons.
func SetupCartRoutes(router *gin.RouterGroup) {
	cart := router.Group("/cart")
	cart.Use(middleware.AuthMiddleware())
	cart.Use(middleware.RateLimiter(60, time.Minute))
	{
		cart.GET("", cart_controller.GetCart)
		cart.DELETE("", cart_controller.ClearCart)

		cart.POST("/items", cart_controller.AddToCart)
		cart.DELETE("/items/:id", cart_controller.RemoveFromCart)
		cart.PATCH("/items/:id/increment", cart_controller.IncrementItem)
		cart.PATCH("/items/:id/decrement", cart_controller.DecrementItem)

		cart.POST("/checkout", cart_controller.Checkout)
	}
}
