package auth_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Verdant-Commerce/verdant-storefront-backend/config"
	"github.com/Verdant-Commerce/verdant-storefront-backend/models"
	"github.com/Verdant-Commerce/verdant-storefront-backend/services"
	"github.com/Verdant-Commerce/verdant-storefront-backend/utils"
	"github.com/gin-gonic/gin"
)

// Login godoc
// @Summary Log in
// @Description Authenticates email, password and role; on success sets the auth cookie and returns the user record {email, name, role}
// @Tags Storefront - Auth
// @Accept json
// @Produce json
// @Param body body models.LoginRequest true "Credentials"
// @Success 200 {object} models.ApiResponse{data=models.UserResponse} "Login successful"
// @Failure 401 {object} models.ApiResponse "Invalid credentials"
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Email, password and role are required"))
		return
	}

	user, err := services.GetAuthService().Authenticate(req.Email, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email, password or role"))
			return
		}
		log.Printf("[auth.login] error for %s: %v", req.Email, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Login failed"))
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Name, user.Role)
	if err != nil {
		log.Printf("[auth.login] failed to issue token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Login failed"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()
	if _, err := services.GetSessionService().CreateSession(
		ctx, user.ID, user.Email, token, c.ClientIP(), c.GetHeader("User-Agent"),
	); err != nil {
		// Session record is advisory; the JWT alone carries the login
		log.Printf("[auth.login] session record failed for %s: %v", user.Email, err)
	}

	setAuthCookie(c, token)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", models.NewUserResponse(user)))
}

// setAuthCookie attaches the JWT as an HTTP-only cookie
func setAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("auth_token", token, 24*60*60, "/", "", false, true)
}
