package auth_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Verdant-Commerce/verdant-storefront-backend/models"
	"github.com/Verdant-Commerce/verdant-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// RegisterCustomer godoc
// @Summary Register a customer account
// @Description Creates a customer account from {name, email, password}
// @Tags Storefront - Auth
// @Accept json
// @Produce json
// @Param body body models.RegisterCustomerRequest true "Registration payload"
// @Success 201 {object} models.ApiResponse{data=models.UserResponse} "Account created"
// @Failure 409 {object} models.ApiResponse "Email already registered"
// @Router /auth/register [post]
func RegisterCustomer(c *gin.Context) {
	var req models.RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Name, email and a password of at least 8 characters are required"))
		return
	}

	user, err := services.GetAuthService().RegisterCustomer(req)
	if err != nil {
		respondRegistrationError(c, req.Email, err)
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Account created", models.NewUserResponse(user)))
}

// respondRegistrationError maps registry errors onto responses; shared by
// the customer and admin registration handlers.
func respondRegistrationError(c *gin.Context, email string, err error) {
	switch {
	case errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "An account with this email already exists"))
	case errors.Is(err, services.ErrWeakPassword):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Password must be at least 8 characters"))
	default:
		log.Printf("[auth.register] error for %s: %v", email, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Registration failed"))
	}
}
