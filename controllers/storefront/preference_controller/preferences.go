package preference_controller

import (
	"log"
	"net/http"

	"github.com/Verdant-Commerce/verdant-storefront-backend/middleware"
	"github.com/Verdant-Commerce/verdant-storefront-backend/models"
	"github.com/Verdant-Commerce/verdant-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// GetPreferences godoc
// @Summary Get presentation preferences
// @Description Returns the caller's theme preference; defaults apply for users who never toggled
// @Tags Storefront - Preferences
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.Preferences}
// @Router /preferences [get]
func GetPreferences(c *gin.Context) {
	email, ok := middleware.GetUserEmailFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Please log in to continue"))
		return
	}

	prefs, err := services.GetPreferenceService().GetPreferences(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load preferences"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Preferences fetched successfully", prefs))
}

// ToggleTheme godoc
// @Summary Toggle the dark-mode theme
// @Description Flips the theme flag and returns the replaced preferences
// @Tags Storefront - Preferences
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.Preferences}
// @Router /preferences/theme [post]
func ToggleTheme(c *gin.Context) {
	email, ok := middleware.GetUserEmailFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Please log in to continue"))
		return
	}

	prefs, err := services.GetPreferenceService().ToggleTheme(c.Request.Context(), email)
	if err != nil {
		log.Printf("[preferences] toggle failed for %s: %v", email, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update preferences"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Theme updated", prefs))
}
