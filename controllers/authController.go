package controllers

import (
	"AyurCare/handlers"
	"AyurCare/middlewares"
	"AyurCare/models"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Handler *handlers.AuthHandler
}

// NewAuthController creates a new AuthController with the given AuthHandler
func NewAuthController(authHandler *handlers.AuthHandler) *AuthController {
	return &AuthController{
		Handler: authHandler,
	}
}

// RegisterRoutes initializes all authentication routes directly on the router
func (ac *AuthController) RegisterRoutes(router *gin.Engine) {
	// Public routes: No authentication required
	router.POST("/auth/login", ac.Handler.Login)
	router.POST("/send-reset-code", ac.Handler.SendResetCode)
	router.POST("/change-password", ac.Handler.ChangePassword)

	// Protected routes: Requires a valid token
	authGroup := router.Group("/auth").Use(middlewares.TokenAuthMiddleware())
	{
		authGroup.POST("/change-email", ac.Handler.ChangeEmail)
		authGroup.POST("/logoff", ac.Handler.Logoff)
		authGroup.GET("/user/profile", ac.Handler.GetUserProfile)
		authGroup.PUT("/user/update-profile", ac.Handler.UpdateUserProfile)
		authGroup.POST("/refresh-token", ac.Handler.RefreshToken)
	}

	// Owner routes: account administration for the clinic
	ownerGroup := router.Group("/auth/admin").Use(
		middlewares.TokenAuthMiddleware(),
		middlewares.RoleAuthMiddleware(models.RoleOwner),
	)
	{
		ownerGroup.POST("/register", ac.Handler.Register)
		ownerGroup.GET("/manage-users", ac.Handler.ManageUsers)
		ownerGroup.DELETE("/delete-account/:id", ac.Handler.DeleteAccount)
	}
}
