package ehr

import (
	"github.com/gin-gonic/gin"

	"mediflow/internal/shared/middleware"
	"mediflow/internal/tokens"
	"mediflow/internal/users"
)

func SetupEHRRoutes(router *gin.RouterGroup, controller *Controller, codec *tokens.Codec) {
	records := router.Group("/patient/ehr")
	{
		records.GET("",
			middleware.RequireRoles(codec, users.RolePatient, users.RoleDoctor),
			controller.ListRecords)
		records.POST("",
			middleware.RequireRoles(codec, users.RoleDoctor),
			controller.CreateRecord)
	}
}
