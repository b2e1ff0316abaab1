package prescriptions

import (
	"github.com/gin-gonic/gin"

	"mediflow/internal/shared/middleware"
	"mediflow/internal/tokens"
	"mediflow/internal/users"
)

func SetupPrescriptionRoutes(router *gin.RouterGroup, controller *Controller, codec *tokens.Codec) {
	prescriptions := router.Group("/patient/prescriptions")
	prescriptions.Use(middleware.RequireRoles(codec, users.RolePatient, users.RoleDoctor))
	{
		prescriptions.GET("", controller.ListPrescriptions)
	}
}
