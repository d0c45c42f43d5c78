package router

import (
	"errors"
	"log/slog"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	apperrors "filesmanager/internal/errors"
	"filesmanager/internal/handler"
	"filesmanager/internal/service"
)

// Handlers groups the HTTP handlers served by the API.
type Handlers struct {
	App  *handler.AppHandler
	User *handler.UserHandler
	Auth *handler.AuthHandler
	File *handler.FileHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, authService service.AuthService, h Handlers) {
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				attrs = append(attrs, "error", v.Error)
			}
			slog.Info("request", attrs...)
			return nil
		},
	}))

	e.Validator = NewValidator()

	e.GET("/status", h.App.Status)
	e.GET("/stats", h.App.Stats)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/users", h.User.Register)
	e.GET("/connect", h.Auth.Connect)
	e.GET("/files/:id/data", h.File.Data)

	// Token routes
	requireToken := handler.RequireToken(authService)
	e.GET("/disconnect", h.Auth.Disconnect, requireToken)
	e.GET("/users/me", h.User.Me, requireToken)
	e.POST("/files", h.File.Upload, requireToken)
	e.GET("/files", h.File.Index, requireToken)
	e.GET("/files/:id", h.File.Show, requireToken)
	e.PUT("/files/:id/publish", h.File.Publish, requireToken)
	e.PUT("/files/:id/unpublish", h.File.Unpublish, requireToken)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator returns a validator that reports fields by their JSON name.
func NewValidator() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator interface. The first failing field is
// reported as missing.
func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.validator.Struct(i)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return apperrors.Missing(fieldErrs[0].Field())
	}
	return err
}
