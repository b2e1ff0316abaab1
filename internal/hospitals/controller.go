package hospitals

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mediflow/internal/shared/utils/response"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) Verify(ctx *gin.Context) {
	var req VerifyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondError(ctx, http.StatusBadRequest, response.CodeValidationError, "Invalid request body", err.Error())
		return
	}

	resp, err := c.service.VerifyCode(ctx.Request.Context(), req.Code)
	if err != nil {
		response.RespondError(ctx, http.StatusInternalServerError, response.CodeInternalError, "Failed to verify hospital code", nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Hospital code verified", resp, nil)
}
