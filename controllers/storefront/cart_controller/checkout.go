package cart_controller

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/Verdant-Commerce/verdant-storefront-backend/middleware"
	"github.com/Verdant-Commerce/verdant-storefront-backend/models"
	"github.com/Verdant-Commerce/verdant-storefront-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Checkout godoc
// @Summary Check out the current cart
// @Description Submits the cart lines to the checkout provider. On success the order is recorded, the cart is cleared, and the payment redirect URL is returned. On failure nothing changes and the reason is returned.
// @Tags Storefront - Cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.CheckoutResponse} "Order placed"
// @Failure 400 {object} models.ApiResponse "Cart is empty"
// @Failure 502 {object} models.ApiResponse "Checkout failed"
// @Router /cart/checkout [post]
func Checkout(c *gin.Context) {
	email, ok := middleware.GetUserEmailFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Please log in to continue"))
		return
	}

	cart := services.GetCartService()
	snapshot := cart.Snapshot(email)
	if len(snapshot.Items) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Cart is empty"))
		return
	}

	url, err := services.GetCheckoutService().Checkout(c.Request.Context(), snapshot.Items)
	if err != nil {
		// No retry: nothing changed, tell the user
		log.Printf("[cart.checkout] failed for %s: %v", email, err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Order failed: "+err.Error()))
		return
	}

	order := models.Order{
		ID:          uuid.Must(uuid.NewV7()),
		OrderNumber: fmt.Sprintf("VD-%d", time.Now().UnixMilli()),
		UserEmail:   email,
		Items:       snapshot.Items,
		TotalAmount: snapshot.Total,
		CreatedAt:   time.Now(),
	}
	services.GetOrderLog().Record(order)
	cart.Clear(email)

	log.Printf("[cart.checkout] order %s placed by %s total=%.2f", order.OrderNumber, email, order.TotalAmount)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order placed", models.CheckoutResponse{
		URL:         url,
		OrderNumber: order.OrderNumber,
	}))
}
