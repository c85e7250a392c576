package auth_controller

import (
	"net/http"

	"github.com/Verdant-Commerce/verdant-storefront-backend/middleware"
	"github.com/Verdant-Commerce/verdant-storefront-backend/models"
	"github.com/Verdant-Commerce/verdant-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// GetMe godoc
// @Summary Get the current user
// @Description Returns the logged-in user record {email, name, role}
// @Tags Storefront - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.UserResponse}
// @Failure 401 {object} models.ApiResponse
// @Router /auth/me [get]
func GetMe(c *gin.Context) {
	email, ok := middleware.GetUserEmailFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Please log in to continue"))
		return
	}

	user, exists := services.GetAuthService().FindByEmail(email)
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Account no longer exists"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "User fetched successfully", models.NewUserResponse(user)))
}
