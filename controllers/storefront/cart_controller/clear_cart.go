package cart_controller

import (
	"net/http"

	"github.com/Verdant-Commerce/verdant-storefront-backend/middleware"
	"github.com/Verdant-Commerce/verdant-storefront-backend/models"
	"github.com/Verdant-Commerce/verdant-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// ClearCart godoc
// @Summary Clear the cart
// @Description Empties every line from the caller's cart
// @Tags Storefront - Cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse "Cart cleared"
// @Router /cart [delete]
func ClearCart(c *gin.Context) {
	email, ok := middleware.GetUserEmailFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Please log in to continue"))
		return
	}

	snapshot := services.GetCartService().Clear(email)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart cleared", snapshot))
}
