package dashboard

import (
	"github.com/gin-gonic/gin"

	"mediflow/internal/shared/middleware"
	"mediflow/internal/tokens"
	"mediflow/internal/users"
)

// SetupPageRoutes registers the server-rendered pages on the engine root,
// outside the API prefix.
func SetupPageRoutes(engine *gin.Engine, controller *Controller, codec *tokens.Codec) {
	engine.SetHTMLTemplate(Templates())

	engine.GET("/", controller.Root)
	engine.GET("/login", controller.Login)

	engine.GET("/admin",
		middleware.RequirePageRoles(codec, users.RoleAdmin),
		controller.Dashboard("Admin Dashboard"))
	engine.GET("/doctor",
		middleware.RequirePageRoles(codec, users.RoleDoctor, users.RoleAdmin),
		controller.Dashboard("Doctor Dashboard"))
	engine.GET("/front-desk",
		middleware.RequirePageRoles(codec, users.RoleFrontDesk, users.RoleAdmin),
		controller.Dashboard("Front Desk"))
	engine.GET("/patient",
		middleware.RequirePageRoles(codec, users.RolePatient),
		controller.Dashboard("Patient Portal"))
}
