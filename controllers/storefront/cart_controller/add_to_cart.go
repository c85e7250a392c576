package cart_controller

import (
	"net/http"

	"github.com/Verdant-Commerce/verdant-storefront-backend/middleware"
	"github.com/Verdant-Commerce/verdant-storefront-backend/models"
	"github.com/Verdant-Commerce/verdant-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// AddToCart godoc
// @Summary Add a product to the cart
// @Description Adds the product, merging quantities when a line for the same product already exists (never duplicating the line)
// @Tags Storefront - Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.AddToCartRequest true "Product to add"
// @Success 200 {object} models.ApiResponse "Item added to cart"
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /cart/items [post]
func AddToCart(c *gin.Context) {
	email, ok := middleware.GetUserEmailFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Please log in to continue"))
		return
	}

	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid cart item payload"))
		return
	}

	snapshot := services.GetCartService().Add(email, models.CartLine{
		ProductID: req.ProductID,
		Title:     req.Title,
		Price:     req.Price,
		Image:     req.Image,
		Route:     req.Route,
		Quantity:  req.Quantity,
	})

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item added to cart", snapshot))
}
