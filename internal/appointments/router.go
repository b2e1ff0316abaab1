package appointments

import (
	"github.com/gin-gonic/gin"

	"mediflow/internal/shared/middleware"
	"mediflow/internal/tokens"
	"mediflow/internal/users"
)

func SetupAppointmentRoutes(router *gin.RouterGroup, controller *Controller, codec *tokens.Codec) {
	doctor := router.Group("/doctor")
	{
		doctor.GET("/appointments",
			middleware.RequireRoles(codec, users.RoleDoctor),
			controller.MyAppointments)
		doctor.GET("/schedule",
			middleware.RequireRoles(codec, users.RoleDoctor, users.RoleAdmin),
			controller.Schedule)
	}

	frontDesk := router.Group("/front-desk/appointments")
	frontDesk.Use(middleware.RequireRoles(codec, users.RoleFrontDesk, users.RoleAdmin))
	{
		frontDesk.GET("", controller.HospitalAppointments)
	}

	patient := router.Group("/patient/appointments")
	{
		patient.GET("",
			middleware.RequireRoles(codec, users.AllRoles...),
			controller.ListForCaller)
		patient.POST("",
			middleware.RequireRoles(codec, users.RoleDoctor, users.RoleAdmin, users.RoleFrontDesk),
			controller.Book)
		patient.PATCH("",
			middleware.RequireRoles(codec, users.AllRoles...),
			controller.UpdateStatus)
	}
}
