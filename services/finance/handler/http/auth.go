package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fintrackr/fintrackr/internal/pkg/logger"
	"github.com/fintrackr/fintrackr/internal/pkg/middleware"
	"github.com/fintrackr/fintrackr/internal/pkg/models"
	"github.com/fintrackr/fintrackr/internal/utils"
	"github.com/fintrackr/fintrackr/services/finance"
)

// AuthHandler handles HTTP requests for registration and login
type AuthHandler struct {
	authUC finance.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC finance.AuthUC) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
	}
}

// Register handles account registration requests
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.authUC.Register(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, finance.ErrMissingFields):
			return utils.BadRequestResponse(c, "Username, email and password are required")
		case errors.Is(err, finance.ErrUsernameTaken):
			return utils.BadRequestResponse(c, "Username already exists")
		case errors.Is(err, finance.ErrEmailTaken):
			return utils.BadRequestResponse(c, "Email already exists")
		default:
			logger.Error("Failed to register user",
				logger.ErrorField(err),
				logger.String("username", req.Username))
			return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to register user")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "User registered successfully", user)
}

// Login handles login requests
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.authUC.Login(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, finance.ErrInvalidCredentials) {
			return utils.UnauthorizedResponse(c, "Invalid credentials")
		}
		logger.Error("Failed to log in user", logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to log in")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// Me returns the authenticated caller's public profile
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.authUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, finance.ErrUserNotFound) {
			return utils.NotFoundResponse(c, "User not found")
		}
		logger.Error("Failed to get profile",
			logger.ErrorField(err),
			logger.String("user_id", userID.String()))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to get profile")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", user)
}
