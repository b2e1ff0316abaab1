package ehr

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

func (ctrl *Controller) ListRecords(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		response.RespondError(c, http.StatusUnauthorized, response.CodeUnauthenticated, "Access token required", nil)
		return
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.CodeInternalError, "Invalid user ID in session", nil)
		return
	}

	list, err := ctrl.service.ListForCaller(c.Request.Context(), userID, claims.Role, c.Query("patient_id"))
	if err != nil {
		if errors.Is(err, ErrNoLinkedProfile) || errors.Is(err, users.ErrUserNotFound) {
			response.RespondError(c, http.StatusNotFound, response.CodeNotFound, "Patient profile not found", nil)
		} else {
			response.RespondError(c, http.StatusBadRequest, response.CodeValidationError, err.Error(), nil)
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Records retrieved successfully", list, nil)
}

// CreateRecord lets a doctor append to a patient's chart.
func (ctrl *Controller) CreateRecord(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		response.RespondError(c, http.StatusUnauthorized, response.CodeUnauthenticated, "Access token required", nil)
		return
	}

	authorID, err := uuid.Parse(claims.UserID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.CodeInternalError, "Invalid user ID in session", nil)
		return
	}
	hospitalID, err := uuid.Parse(claims.HospitalID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.CodeInternalError, "Invalid hospital ID in session", nil)
		return
	}

	var req CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.CodeValidationError, "Invalid request body", err.Error())
		return
	}

	record, err := ctrl.service.Create(c.Request.Context(), authorID, hospitalID, req)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.CodeInternalError, "Failed to create record", nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Record created successfully", record, nil)
}
