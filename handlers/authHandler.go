package handlers

import (
	"PulmoCare/middlewares"
	"PulmoCare/models"
	"PulmoCare/services"
	"PulmoCare/utils"
	"errors"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service *services.AuthService
}

func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register provisions a staff account.
func (h *AuthHandler) Register(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}
	if err := h.service.Register(c.Request.Context(), &user); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(201, user)
}

// Login authenticates the user, sets the session cookies, and returns the
// tokens alongside the user record.
func (h *AuthHandler) Login(c *gin.Context) {
	var credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := h.service.Authenticate(c.Request.Context(), credentials.Email, credentials.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(401, gin.H{"error": "Invalid email or password"})
			return
		}
		handleServiceError(c, err)
		return
	}

	accessToken, refreshToken, err := utils.GenerateTokens(user.ID, user.Role)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to generate tokens"})
		return
	}
	utils.SetAuthCookies(c, accessToken, refreshToken)

	c.JSON(200, gin.H{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
		"user":         user,
	})
}

// Logout clears the session cookies.
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearAuthCookies(c)
	c.Status(200)
}

// GetProfile returns the authenticated user's record.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, err := middlewares.ExtractUserIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(401, gin.H{"error": "Unauthorized"})
		return
	}
	user, err := h.service.GetUser(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(200, user)
}

// SendResetCode mails a password reset code. It answers 200 whether or not
// the email matches an account.
func (h *AuthHandler) SendResetCode(c *gin.Context) {
	var payload struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}
	if err := h.service.RequestPasswordReset(c.Request.Context(), payload.Email); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(200)
}

// ResetPassword verifies the emailed code and replaces the password.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var payload struct {
		Email       string `json:"email"`
		Code        string `json:"code"`
		NewPassword string `json:"newPassword"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}
	err := h.service.ResetPassword(c.Request.Context(), payload.Email, payload.Code, payload.NewPassword)
	if err != nil {
		if errors.Is(err, services.ErrInvalidResetCode) {
			c.JSON(401, gin.H{"error": "Invalid reset code"})
			return
		}
		handleServiceError(c, err)
		return
	}
	c.Status(200)
}
