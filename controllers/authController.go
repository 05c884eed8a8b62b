package controllers

import (
	"PulmoCare/handlers"
	"PulmoCare/middlewares"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Handler *handlers.AuthHandler
}

// NewAuthController creates a new AuthController with the given AuthHandler.
func NewAuthController(authHandler *handlers.AuthHandler) *AuthController {
	return &AuthController{Handler: authHandler}
}

// RegisterRoutes initializes all authentication routes directly on the router.
func (ac *AuthController) RegisterRoutes(router *gin.Engine) {
	// Public routes: no authentication required
	router.POST("/auth/register", ac.Handler.Register)
	router.POST("/auth/login", ac.Handler.Login)
	router.POST("/auth/send-reset-code", ac.Handler.SendResetCode)
	router.POST("/auth/reset-password", ac.Handler.ResetPassword)

	// Protected routes: require a valid token
	authGroup := router.Group("/auth").Use(middlewares.TokenAuthMiddleware())
	{
		authGroup.POST("/logout", ac.Handler.Logout)
		authGroup.GET("/user", ac.Handler.GetProfile)
	}

	// The SPA reads the current user from under the API prefix.
	router.Group("/api/auth").
		Use(middlewares.TokenAuthMiddleware()).
		GET("/user", ac.Handler.GetProfile)
}
