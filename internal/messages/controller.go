package messages

import (
	"errors"
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

func (ctrl *Controller) ListMessages(c *gin.Context) {
	callerID, _, ok := sessionIDs(c)
	if !ok {
		return
	}

	var query ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.CodeValidationError, "Invalid query parameters", err.Error())
		return
	}

	list, err := ctrl.service.List(c.Request.Context(), callerID, query)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.CodeInternalError, "Failed to list messages", nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Messages retrieved successfully", list, nil)
}

func (ctrl *Controller) SendMessage(c *gin.Context) {
	callerID, hospitalID, ok := sessionIDs(c)
	if !ok {
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.CodeValidationError, "Invalid request body", err.Error())
		return
	}

	message, err := ctrl.service.Send(c.Request.Context(), callerID, hospitalID, req)
	if err != nil {
		if errors.Is(err, ErrSenderSpoof) {
			response.RespondError(c, http.StatusForbidden, response.CodeForbidden, err.Error(), nil)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.CodeInternalError, "Failed to send message", nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Message sent successfully", message, nil)
}

// ListDoctors feeds the patient-side recipient picker.
func (ctrl *Controller) ListDoctors(c *gin.Context) {
	_, hospitalID, ok := sessionIDs(c)
	if !ok {
		return
	}

	doctors, err := ctrl.service.ListDoctors(c.Request.Context(), hospitalID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.CodeInternalError, "Failed to list doctors", nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Doctors retrieved successfully", doctors, nil)
}

func sessionIDs(c *gin.Context) (callerID, hospitalID uuid.UUID, ok bool) {
	claims, exists := middleware.ClaimsFromContext(c)
	if !exists {
		response.RespondError(c, http.StatusUnauthorized, response.CodeUnauthenticated, "Access token required", nil)
		return uuid.Nil, uuid.Nil, false
	}

	callerID, err := uuid.Parse(claims.UserID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.CodeInternalError, "Invalid user ID in session", nil)
		return uuid.Nil, uuid.Nil, false
	}
	hospitalID, err = uuid.Parse(claims.HospitalID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.CodeInternalError, "Invalid hospital ID in session", nil)
		return uuid.Nil, uuid.Nil, false
	}
	return callerID, hospitalID, true
}
