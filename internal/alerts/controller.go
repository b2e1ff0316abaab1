package alerts

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

// StaffFeed is the doctor/front-desk alert stream, latest 50.
func (ctrl *Controller) StaffFeed(c *gin.Context) {
	hospitalID, ok := callerHospital(c)
	if !ok {
		return
	}

	list, err := ctrl.service.StaffFeed(c.Request.Context(), hospitalID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.CodeInternalError, "Failed to list alerts", nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Alerts retrieved successfully", list, nil)
}

// AdminFeed is the condensed admin view, latest 20.
func (ctrl *Controller) AdminFeed(c *gin.Context) {
	hospitalID, ok := callerHospital(c)
	if !ok {
		return
	}

	list, err := ctrl.service.AdminFeed(c.Request.Context(), hospitalID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.CodeInternalError, "Failed to list alerts", nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Alerts retrieved successfully", list, nil)
}

// Triage accepts a symptom report from any authenticated user and raises a
// triage_request alert for the hospital's staff.
func (ctrl *Controller) Triage(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		response.RespondError(c, http.StatusUnauthorized, response.CodeUnauthenticated, "Access token required", nil)
		return
	}

	hospitalID, err := uuid.Parse(claims.HospitalID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.CodeInternalError, "Invalid hospital ID in session", nil)
		return
	}

	var req TriageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.CodeValidationError, "Invalid request body", err.Error())
		return
	}

	payload := map[string]string{
		"requested_by": claims.UserID,
		"symptoms":     req.Symptoms,
		"severity":     req.Severity,
	}
	alert, err := ctrl.service.Raise(c.Request.Context(), hospitalID, KindTriageRequest, payload)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.CodeInternalError, "Failed to create triage request", nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Triage request submitted", alert, nil)
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
