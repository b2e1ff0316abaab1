package patients

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"mediflow/internal/shared/middleware"
	"mediflow/internal/shared/utils/response"
	"mediflow/internal/users"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// ListPatients serves the roster for staff views. The hospital scope comes
// from the verified claims, so a token from hospital A can never list
// hospital B's patients.
func (ctrl *Controller) ListPatients(c *gin.Context) {
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

	var query ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.CodeValidationError, "Invalid query parameters", err.Error())
		return
	}

	list, err := ctrl.service.List(c.Request.Context(), hospitalID, query)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.CodeInternalError, "Failed to list patients", nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Patients retrieved successfully", list, nil)
}

// RegisterPatient creates a walk-in patient record without an account.
func (ctrl *Controller) RegisterPatient(c *gin.Context) {
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

	var req CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.CodeValidationError, "Invalid request body", err.Error())
		return
	}

	patient, err := ctrl.service.Register(c.Request.Context(), hospitalID, req)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.CodeValidationError, err.Error(), nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Patient registered successfully", patient, nil)
}

// GetProfile returns the calling patient's own record.
func (ctrl *Controller) GetProfile(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	patient, err := ctrl.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		ctrl.respondProfileError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Profile retrieved successfully", patient, nil)
}

// UpdateProfile applies a partial edit to the calling patient's own record.
func (ctrl *Controller) UpdateProfile(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.CodeValidationError, "Invalid request body", err.Error())
		return
	}

	patient, err := ctrl.service.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		ctrl.respondProfileError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Profile updated successfully", patient, nil)
}

func (ctrl *Controller) respondProfileError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNoLinkedProfile), errors.Is(err, ErrPatientNotFound), errors.Is(err, users.ErrUserNotFound):
		response.RespondError(c, http.StatusNotFound, response.CodeNotFound, "Patient profile not found", nil)
	default:
		response.RespondError(c, http.StatusInternalServerError, response.CodeInternalError, "Failed to load patient profile", nil)
	}
}

func callerID(c *gin.Context) (uuid.UUID, bool) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		response.RespondError(c, http.StatusUnauthorized, response.CodeUnauthenticated, "Access token required", nil)
		return uuid.Nil, false
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.CodeInternalError, "Invalid user ID in session", nil)
		return uuid.Nil, false
	}
	return userID, true
}
