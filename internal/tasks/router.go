package tasks

import (
	"github.com/gin-gonic/gin"

	"mediflow/internal/shared/middleware"
	"mediflow/internal/tokens"
	"mediflow/internal/users"
)

func SetupTaskRoutes(router *gin.RouterGroup, controller *Controller, codec *tokens.Codec) {
	tasks := router.Group("/doctor/tasks")
	tasks.Use(middleware.RequireRoles(codec, users.RoleDoctor, users.RoleAdmin, users.RoleFrontDesk))
	{
		tasks.GET("", controller.ListTasks)
		tasks.POST("", controller.MutateTask)
	}
}
