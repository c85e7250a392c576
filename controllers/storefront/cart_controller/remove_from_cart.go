package cart_controller

import (
	"net/http"
	"strconv"

	"github.com/Verdant-Commerce/verdant-storefront-backend/middleware"
	"github.com/Verdant-Commerce/verdant-storefront-backend/models"
	"github.com/Verdant-Commerce/verdant-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// RemoveFromCart godoc
// @Summary Remove a product from the cart
// @Description Removes the line for the product id. Removing an absent line is a no-op, not an error.
// @Tags Storefront - Cart
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} models.ApiResponse "Item removed from cart"
// @Failure 401 {object} models.ApiResponse
// @Router /cart/items/{id} [delete]
func RemoveFromCart(c *gin.Context) {
	email, ok := middleware.GetUserEmailFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Please log in to continue"))
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product id"))
		return
	}

	snapshot := services.GetCartService().Remove(email, id)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item removed from cart", snapshot))
}
