package auth_controller

import (
	"net/http"

	"github.com/Verdant-Commerce/verdant-storefront-backend/config"
	"github.com/Verdant-Commerce/verdant-storefront-backend/models"
	"github.com/Verdant-Commerce/verdant-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// Logout godoc
// @Summary Log out
// @Description Deactivates the session record and clears the auth cookie
// @Tags Storefront - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse "Logged out"
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	if tokenHash, exists := c.Get("tokenHash"); exists {
		ctx, cancel := config.WithTimeout()
		defer cancel()
		_ = services.GetSessionService().DeactivateSession(ctx, tokenHash.(string))
	}

	// Expire the cookie
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("auth_token", "", -1, "/", "", false, true)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out", nil))
}
