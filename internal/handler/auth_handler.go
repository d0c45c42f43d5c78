package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"filesmanager/internal/errors"
	"filesmanager/internal/service"
)

// AuthHandler handles session endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// TokenResponse carries a session token.
type TokenResponse struct {
	Token string `json:"token"`
}

// Connect godoc
// @Summary Sign in with HTTP Basic credentials
// @Tags auth
// @Produce json
// @Security BasicAuth
// @Success 200 {object} TokenResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /connect [get]
func (h *AuthHandler) Connect(c echo.Context) error {
	email, password, ok := c.Request().BasicAuth()
	if !ok {
		return respondError(c, errors.ErrUnauthorized)
	}

	token, err := h.authService.Login(c.Request().Context(), email, password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, TokenResponse{Token: token})
}

// Disconnect godoc
// @Summary Sign out
// @Tags auth
// @Security TokenAuth
// @Success 204
// @Failure 401 {object} errors.ErrorResponse
// @Router /disconnect [get]
func (h *AuthHandler) Disconnect(c echo.Context) error {
	if err := h.authService.Logout(c.Request().Context(), tokenFromContext(c)); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
