package messages

import (
	"github.com/gin-gonic/gin"

	"mediflow/internal/shared/middleware"
	"mediflow/internal/tokens"
	"mediflow/internal/users"
)

func SetupMessageRoutes(router *gin.RouterGroup, controller *Controller, codec *tokens.Codec) {
	msgs := router.Group("/messages")
	msgs.Use(middleware.RequireRoles(codec, users.AllRoles...))
	{
		msgs.GET("", controller.ListMessages)
		msgs.POST("", controller.SendMessage)
	}

	doctors := router.Group("/patient/doctors")
	doctors.Use(middleware.RequireRoles(codec, users.RolePatient))
	{
		doctors.GET("", controller.ListDoctors)
	}
}
