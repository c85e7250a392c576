package cart_controller

import (
	"net/http"

	"github.com/Verdant-Commerce/verdant-storefront-backend/middleware"
	"github.com/Verdant-Commerce/verdant-storefront-backend/models"
	"github.com/Verdant-Commerce/verdant-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// GetCart godoc
// @Summary Get the current cart
// @Description Returns the caller's cart lines with the total recomputed from current state
// @Tags Storefront - Cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse "Cart fetched successfully"
// @Failure 401 {object} models.ApiResponse
// @Router /cart [get]
func GetCart(c *gin.Context) {
	email, ok := middleware.GetUserEmailFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Please log in to continue"))
		return
	}

	snapshot := services.GetCartService().Snapshot(email)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart fetched successfully", snapshot))
}
