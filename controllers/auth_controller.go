package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"elegant-hotel/auth"
	"elegant-hotel/middleware"
	"elegant-hotel/models"
	"elegant-hotel/services"
	"elegant-hotel/utils"
)

type AuthController struct {
	Users  *services.UserService
	JWT    *auth.JWTService
	Tokens auth.TokenStore
}

func NewAuthController(users *services.UserService, jwt *auth.JWTService, tokens auth.TokenStore) *AuthController {
	return &AuthController{Users: users, JWT: jwt, Tokens: tokens}
}

type registerPayload struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type changePasswordPayload struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

func userResponse(u *models.User) gin.H {
	return gin.H{
		"id":     u.ID,
		"name":   u.Name,
		"email":  u.Email,
		"role":   u.Role,
		"active": u.Active,
	}
}

func (ac *AuthController) setTokenCookie(c *gin.Context, token string) {
	secure := utils.EnvOrDefault("COOKIE_SECURE", "false") == "true"
	c.SetCookie(middleware.TokenCookie, token, int(auth.TokenExpiry.Seconds()), "/", "", secure, true)
}

// Register handles POST /api/auth/register. New accounts are customers.
func (ac *AuthController) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	user, err := ac.Users.Register(payload.Name, payload.Email, payload.Password)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}

	token, err := ac.JWT.IssueToken(user.ID, user.Email, user.Role)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token")
		return
	}
	ac.setTokenCookie(c, token)

	c.JSON(http.StatusCreated, gin.H{"token": token, "user": userResponse(user)})
}

// Login handles POST /api/auth/login and sets the httponly token cookie.
func (ac *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	user, err := ac.Users.Authenticate(payload.Email, payload.Password)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}

	token, err := ac.JWT.IssueToken(user.ID, user.Email, user.Role)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token")
		return
	}
	ac.setTokenCookie(c, token)

	c.JSON(http.StatusOK, gin.H{"token": token, "user": userResponse(user)})
}

// Logout revokes the current token (when a token store is configured) and
// clears the cookie.
func (ac *AuthController) Logout(c *gin.Context) {
	if ac.Tokens != nil {
		if v, ok := c.Get(middleware.ContextClaims); ok {
			if claims, ok := v.(*auth.Claims); ok && claims.ID != "" && claims.ExpiresAt != nil {
				ttl := time.Until(claims.ExpiresAt.Time)
				_ = ac.Tokens.Revoke(c.Request.Context(), claims.ID, ttl)
			}
		}
	}

	secure := utils.EnvOrDefault("COOKIE_SECURE", "false") == "true"
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", secure, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// Check returns the identity behind the current token.
func (ac *AuthController) Check(c *gin.Context) {
	user, err := ac.Users.Get(middleware.CurrentUserID(c))
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": userResponse(user)})
}

// ChangePassword lets a user rotate their own credentials.
func (ac *AuthController) ChangePassword(c *gin.Context) {
	var payload changePasswordPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	if err := ac.Users.ChangePassword(middleware.CurrentUserID(c), payload.CurrentPassword, payload.NewPassword); err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}
