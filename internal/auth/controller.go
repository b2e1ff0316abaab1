package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mediflow/internal/session"
	"mediflow/internal/shared/middleware"
	"mediflow/internal/shared/utils/response"
	"mediflow/pkg/logger"
)

type Controller struct {
	service Service
	log     *logger.Logger
}

func NewController(service Service, log *logger.Logger) *Controller {
	return &Controller{service: service, log: log}
}

// Login authenticates, establishes the cookie session and returns the user.
// Unknown email and wrong password are indistinguishable in the response.
func (ctrl *Controller) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.CodeValidationError, "Invalid request body", err.Error())
		return
	}

	result, err := ctrl.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			ctrl.log.LogAuthFailure(c.Request.Context(), "invalid credentials", c.ClientIP())
			response.RespondError(c, http.StatusUnauthorized, response.CodeInvalidCredentials, "Invalid email or password", nil)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.CodeInternalError, "Login failed", nil)
		return
	}

	session.Establish(c, result.Pair.AccessToken, result.Pair.RefreshToken)
	ctrl.log.LogAuthSuccess(c.Request.Context(), result.User.ID.String(), "password")

	response.RespondJSON(c, "success", http.StatusOK, "Login successful", buildAuthResponse(result), nil)
}

// Logout clears the session cookies. It succeeds whether or not a session
// existed, so repeated logouts are harmless.
func (ctrl *Controller) Logout(c *gin.Context) {
	session.Clear(c)
	response.RespondJSON(c, "success", http.StatusOK, "Logout successful", nil, nil)
}

// Register creates an account under a hospital code and logs it in.
func (ctrl *Controller) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.CodeValidationError, "Invalid request body", err.Error())
		return
	}

	result, err := ctrl.service.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserAlreadyExists):
			response.RespondError(c, http.StatusConflict, response.CodeConflict, "An account with this email already exists", nil)
		case errors.Is(err, ErrUnknownHospitalCode), errors.Is(err, ErrInvalidRole):
			response.RespondError(c, http.StatusBadRequest, response.CodeValidationError, err.Error(), nil)
		default:
			response.RespondError(c, http.StatusInternalServerError, response.CodeInternalError, "Registration failed", nil)
		}
		return
	}

	session.Establish(c, result.Pair.AccessToken, result.Pair.RefreshToken)
	ctrl.log.LogAuthSuccess(c.Request.Context(), result.User.ID.String(), "register")

	response.RespondJSON(c, "success", http.StatusCreated, "Registration successful", buildAuthResponse(result), nil)
}

// Me echoes the verified claims; the frontend uses it to hydrate the session.
func (ctrl *Controller) Me(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		response.RespondError(c, http.StatusUnauthorized, response.CodeUnauthenticated, "Access token required", nil)
		return
	}

	me := MeResponse{
		UserID:     claims.UserID,
		Role:       string(claims.Role),
		HospitalID: claims.HospitalID,
	}
	response.RespondJSON(c, "success", http.StatusOK, "Session retrieved successfully", me, nil)
}

func buildAuthResponse(result *LoginResult) AuthResponse {
	return AuthResponse{
		User: UserResponse{
			ID:         result.User.ID.String(),
			Email:      result.User.Email,
			Role:       string(result.User.Role),
			HospitalID: result.User.HospitalID.String(),
			CreatedAt:  result.User.CreatedAt,
		},
		AccessToken: result.Pair.AccessToken,
		ExpiresIn:   result.Pair.ExpiresIn,
	}
}
