package auth

import (
	"github.com/gin-gonic/gin"

	"mediflow/internal/shared/middleware"
	"mediflow/internal/tokens"
	"mediflow/internal/users"
)

func SetupAuthRoutes(router *gin.RouterGroup, controller *Controller, codec *tokens.Codec) {
	authGroup := router.Group("/auth")
	{
		// Public
		authGroup.POST("/login", controller.Login)
		authGroup.POST("/register", controller.Register)
		authGroup.POST("/logout", controller.Logout)

		// Any authenticated role
		authGroup.GET("/me",
			middleware.RequireRoles(codec, users.AllRoles...),
			controller.Me)
	}
}
