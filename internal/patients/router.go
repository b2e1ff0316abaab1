package patients

import (
	"github.com/gin-gonic/gin"

	"mediflow/internal/shared/middleware"
	"mediflow/internal/tokens"
	"mediflow/internal/users"
)

func SetupPatientRoutes(router *gin.RouterGroup, controller *Controller, codec *tokens.Codec) {
	// Staff-facing roster views. The doctor and front-desk prefixes expose the
	// same roster with different role sets.
	doctorPatients := router.Group("/doctor/patients")
	doctorPatients.Use(middleware.RequireRoles(codec, users.RoleDoctor, users.RoleAdmin, users.RoleFrontDesk))
	{
		doctorPatients.GET("", controller.ListPatients)
	}

	frontDeskPatients := router.Group("/front-desk/patients")
	frontDeskPatients.Use(middleware.RequireRoles(codec, users.RoleFrontDesk, users.RoleAdmin))
	{
		frontDeskPatients.GET("", controller.ListPatients)
		frontDeskPatients.POST("", controller.RegisterPatient)
	}

	// Self-service profile, PATIENT only.
	profile := router.Group("/patient/profile")
	profile.Use(middleware.RequireRoles(codec, users.RolePatient))
	{
		profile.GET("", controller.GetProfile)
		profile.PATCH("", controller.UpdateProfile)
	}
}
