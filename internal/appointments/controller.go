package appointments

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"mediflow/internal/shared/middleware"
	"mediflow/internal/shared/utils/response"
	"mediflow/internal/tokens"
	"mediflow/internal/users"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// MyAppointments lists the calling doctor's own appointments.
func (ctrl *Controller) MyAppointments(c *gin.Context) {
	_, doctorID, ok := callerIDs(c)
	if !ok {
		return
	}

	list, err := ctrl.service.ListForDoctor(c.Request.Context(), doctorID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.CodeInternalError, "Failed to list appointments", nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Appointments retrieved successfully", list, nil)
}

// Schedule returns the next seven days of appointments, scoped to the calling
// doctor, or hospital-wide for admins.
func (ctrl *Controller) Schedule(c *gin.Context) {
	claims, userID, ok := callerIDs(c)
	if !ok {
		return
	}

	hospitalID, err := uuid.Parse(claims.HospitalID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.CodeInternalError, "Invalid hospital ID in session", nil)
		return
	}

	var doctorID *uuid.UUID
	if claims.Role == users.RoleDoctor {
		doctorID = &userID
	}

	list, err := ctrl.service.Schedule(c.Request.Context(), hospitalID, doctorID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.CodeInternalError, "Failed to load schedule", nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Schedule retrieved successfully", list, nil)
}

// HospitalAppointments is the front-desk view: latest hospital appointments
// with an optional status filter.
func (ctrl *Controller) HospitalAppointments(c *gin.Context) {
	claims, _, ok := callerIDs(c)
	if !ok {
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

	list, err := ctrl.service.ListForFrontDesk(c.Request.Context(), hospitalID, Status(query.Status))
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.CodeInternalError, "Failed to list appointments", nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Appointments retrieved successfully", list, nil)
}

// ListForCaller serves GET /patient/appointments for every role.
func (ctrl *Controller) ListForCaller(c *gin.Context) {
	claims, userID, ok := callerIDs(c)
	if !ok {
		return
	}

	hospitalID, err := uuid.Parse(claims.HospitalID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.CodeInternalError, "Invalid hospital ID in session", nil)
		return
	}

	list, err := ctrl.service.ListForCaller(c.Request.Context(), userID, hospitalID, claims.Role)
	if err != nil {
		ctrl.respondServiceError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Appointments retrieved successfully", list, nil)
}

// Book creates a new appointment on behalf of a patient.
func (ctrl *Controller) Book(c *gin.Context) {
	claims, _, ok := callerIDs(c)
	if !ok {
		return
	}

	hospitalID, err := uuid.Parse(claims.HospitalID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.CodeInternalError, "Invalid hospital ID in session", nil)
		return
	}

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.CodeValidationError, "Invalid request body", err.Error())
		return
	}

	appointment, err := ctrl.service.Book(c.Request.Context(), hospitalID, req)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.CodeValidationError, err.Error(), nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Appointment booked successfully", appointment, nil)
}

// UpdateStatus changes an appointment's status, with the patient-side
// restriction enforced in the service.
func (ctrl *Controller) UpdateStatus(c *gin.Context) {
	claims, userID, ok := callerIDs(c)
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.CodeValidationError, "Invalid request body", err.Error())
		return
	}

	appointment, err := ctrl.service.UpdateStatus(c.Request.Context(), userID, claims.Role, req)
	if err != nil {
		ctrl.respondServiceError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Appointment updated successfully", appointment, nil)
}

func (ctrl *Controller) respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotYourAppointment), errors.Is(err, ErrPatientCanOnlyCancel):
		response.RespondError(c, http.StatusForbidden, response.CodeForbidden, err.Error(), nil)
	case errors.Is(err, ErrAppointmentNotFound), errors.Is(err, ErrNoLinkedProfile), errors.Is(err, users.ErrUserNotFound):
		response.RespondError(c, http.StatusNotFound, response.CodeNotFound, "Appointment not found", nil)
	default:
		response.RespondError(c, http.StatusInternalServerError, response.CodeInternalError, "Failed to update appointment", nil)
	}
}

func callerIDs(c *gin.Context) (*tokens.Claims, uuid.UUID, bool) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		response.RespondError(c, http.StatusUnauthorized, response.CodeUnauthenticated, "Access token required", nil)
		return nil, uuid.Nil, false
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.CodeInternalError, "Invalid user ID in session", nil)
		return nil, uuid.Nil, false
	}
	return claims, userID, true
}
