package tasks

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

func (ctrl *Controller) ListTasks(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		response.RespondError(c, http.StatusUnauthorized, response.CodeUnauthenticated, "Access token required", nil)
		return
	}

	assigneeID, err := uuid.Parse(claims.UserID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.CodeInternalError, "Invalid user ID in session", nil)
		return
	}

	var query ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.CodeValidationError, "Invalid query parameters", err.Error())
		return
	}

	list, err := ctrl.service.List(c.Request.Context(), assigneeID, Status(query.Status))
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.CodeInternalError, "Failed to list tasks", nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Tasks retrieved successfully", list, nil)
}

// MutateTask is the combined create/update endpoint: {action, id} moves an
// existing task, a body without action creates one.
func (ctrl *Controller) MutateTask(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		response.RespondError(c, http.StatusUnauthorized, response.CodeUnauthenticated, "Access token required", nil)
		return
	}

	assigneeID, err := uuid.Parse(claims.UserID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.CodeInternalError, "Invalid user ID in session", nil)
		return
	}
	hospitalID, err := uuid.Parse(claims.HospitalID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.CodeInternalError, "Invalid hospital ID in session", nil)
		return
	}

	var req MutateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.CodeValidationError, "Invalid request body", err.Error())
		return
	}

	task, err := ctrl.service.Mutate(c.Request.Context(), assigneeID, hospitalID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotYourTask):
			response.RespondError(c, http.StatusForbidden, response.CodeForbidden, err.Error(), nil)
		case errors.Is(err, ErrTaskNotFound):
			response.RespondError(c, http.StatusNotFound, response.CodeNotFound, "Task not found", nil)
		default:
			response.RespondError(c, http.StatusBadRequest, response.CodeValidationError, err.Error(), nil)
		}
		return
	}

	status := http.StatusCreated
	message := "Task created successfully"
	if req.Action != "" {
		status = http.StatusOK
		message = "Task updated successfully"
	}
	response.RespondJSON(c, "success", status, message, task, nil)
}
