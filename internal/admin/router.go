package admin

import (
	"github.com/gin-gonic/gin"

	"mediflow/internal/shared/middleware"
	"mediflow/internal/tokens"
	"mediflow/internal/users"
)

func SetupAdminRoutes(router *gin.RouterGroup, controller *Controller, codec *tokens.Codec) {
	adminGroup := router.Group("/admin")
	adminGroup.Use(middleware.RequireRoles(codec, users.RoleAdmin))
	{
		adminGroup.GET("/stats", controller.GetStats)
		adminGroup.GET("/users", controller.ListUsers)
	}
}
