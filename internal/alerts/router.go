package alerts

import (
	"github.com/gin-gonic/gin"

	"mediflow/internal/shared/middleware"
	"mediflow/internal/tokens"
	"mediflow/internal/users"
)

func SetupAlertRoutes(router *gin.RouterGroup, controller *Controller, codec *tokens.Codec) {
	staff := router.Group("/doctor/alerts")
	staff.Use(middleware.RequireRoles(codec, users.RoleDoctor, users.RoleAdmin, users.RoleFrontDesk))
	{
		staff.GET("", controller.StaffFeed)
	}

	admin := router.Group("/admin/alerts")
	admin.Use(middleware.RequireRoles(codec, users.RoleAdmin))
	{
		admin.GET("", controller.AdminFeed)
	}

	triage := router.Group("/patient/triage")
	triage.Use(middleware.RequireRoles(codec, users.AllRoles...))
	{
		triage.POST("", controller.Triage)
	}
}
