package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"filesmanager/internal/service"
)

// AppHandler handles service health endpoints.
type AppHandler struct {
	appService service.AppService
}

// NewAppHandler creates a new app handler.
func NewAppHandler(appService service.AppService) *AppHandler {
	return &AppHandler{appService: appService}
}

// Status godoc
// @Summary Backend liveness
// @Tags app
// @Produce json
// @Success 200 {object} service.Status
// @Router /status [get]
func (h *AppHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, h.appService.Status(c.Request().Context()))
}

// Stats godoc
// @Summary Number of users and files
// @Tags app
// @Produce json
// @Success 200 {object} service.Stats
// @Failure 500 {object} errors.ErrorResponse
// @Router /stats [get]
func (h *AppHandler) Stats(c echo.Context) error {
	stats, err := h.appService.Stats(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}
