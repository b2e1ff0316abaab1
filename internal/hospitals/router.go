package hospitals

import "github.com/gin-gonic/gin"

func SetupHospitalRoutes(rg *gin.RouterGroup, controller *Controller) {
	hospital := rg.Group("/hospital")
	{
		// Public: used by the registration form before any session exists.
		hospital.POST("/verify", controller.Verify)
	}
}
