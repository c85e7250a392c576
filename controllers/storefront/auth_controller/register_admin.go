package auth_controller

import (
	"net/http"

	"github.com/Verdant-Commerce/verdant-storefront-backend/models"
	"github.com/Verdant-Commerce/verdant-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// RegisterAdmin godoc
// @Summary Register an admin (shop) account
// @Description Creates an admin account with the extended shop profile {shop_name, address}
// @Tags Storefront - Auth
// @Accept json
// @Produce json
// @Param body body models.RegisterAdminRequest true "Registration payload with shop profile"
// @Success 201 {object} models.ApiResponse{data=models.UserResponse} "Account created"
// @Failure 409 {object} models.ApiResponse "Email already registered"
// @Router /auth/register/admin [post]
func RegisterAdmin(c *gin.Context) {
	var req models.RegisterAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Name, email, password, shop name and a full address are required"))
		return
	}

	user, err := services.GetAuthService().RegisterAdmin(req)
	if err != nil {
		respondRegistrationError(c, req.Email, err)
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Account created", models.NewUserResponse(user)))
}
