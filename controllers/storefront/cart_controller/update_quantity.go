package cart_controller

import (
	"net/http"
	"strconv"

	"github.com/Verdant-Commerce/verdant-storefront-backend/middleware"
	"github.com/Verdant-Commerce/verdant-storefront-backend/models"
	"github.com/Verdant-Commerce/verdant-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// IncrementItem godoc
// @Summary Increment an item's quantity
// @Description Raises the line quantity by one; unknown product ids are a no-op
// @Tags Storefront - Cart
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} models.ApiResponse "Quantity updated"
// @Router /cart/items/{id}/increment [patch]
func IncrementItem(c *gin.Context) {
	email, id, ok := lineTarget(c)
	if !ok {
		return
	}

	snapshot := services.GetCartService().Increment(email, id)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Quantity updated", snapshot))
}

// DecrementItem godoc
// @Summary Decrement an item's quantity
// @Description Lowers the line quantity by one, floored at 1. A quantity-1 line stays in the cart; removal is a separate action.
// @Tags Storefront - Cart
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} models.ApiResponse "Quantity updated"
// @Router /cart/items/{id}/decrement [patch]
func DecrementItem(c *gin.Context) {
	email, id, ok := lineTarget(c)
	if !ok {
		return
	}

	snapshot := services.GetCartService().Decrement(email, id)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Quantity updated", snapshot))
}

// lineTarget resolves the caller and the product id path param, writing the
// error response itself when either is missing.
func lineTarget(c *gin.Context) (string, int64, bool) {
	email, ok := middleware.GetUserEmailFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Please log in to continue"))
		return "", 0, false
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product id"))
		return "", 0, false
	}

	return email, id, true
}
