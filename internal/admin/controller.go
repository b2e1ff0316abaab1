package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"mediflow/internal/shared/middleware"
	"mediflow/internal/shared/utils/response"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (ctrl *Controller) GetStats(c *gin.Context) {
	hospitalID, ok := callerHospital(c)
	if !ok {
		return
	}

	stats, err := ctrl.service.Stats(c.Request.Context(), hospitalID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.CodeInternalError, "Failed to load stats", nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Stats retrieved successfully", stats, nil)
}

func (ctrl *Controller) ListUsers(c *gin.Context) {
	hospitalID, ok := callerHospital(c)
	if !ok {
		return
	}

	list, err := ctrl.service.ListUsers(c.Request.Context(), hospitalID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.CodeInternalError, "Failed to list users", nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Users retrieved successfully", list, nil)
}

func callerHospital(c *gin.Context) (uuid.UUID, bool) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		response.RespondError(c, http.StatusUnauthorized, response.CodeUnauthenticated, "Access token required", nil)
		return uuid.Nil, false
	}
	hospitalID, err := uuid.Parse(claims.HospitalID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.CodeInternalError, "Invalid hospital ID in session", nil)
		return uuid.Nil, false
	}
	return hospitalID, true
}
