package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"filesmanager/internal/errors"
	"filesmanager/internal/service"
)

// HeaderToken carries the session token issued by GET /connect.
const HeaderToken = "X-Token"

const (
	ctxUserID = "userID"
	ctxToken  = "token"
)

// RequireToken rejects requests whose X-Token does not resolve to a session.
func RequireToken(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(HeaderToken)
			userID, err := authService.Authenticate(c.Request().Context(), token)
			if err != nil {
				return respondError(c, err)
			}
			c.Set(ctxUserID, userID)
			c.Set(ctxToken, token)
			return next(c)
		}
	}
}

// UserIDFromContext returns the user id set by RequireToken, or "".
func UserIDFromContext(c echo.Context) string {
	userID, _ := c.Get(ctxUserID).(string)
	return userID
}

func tokenFromContext(c echo.Context) string {
	token, _ := c.Get(ctxToken).(string)
	return token
}

// respondError maps err to the JSON error body. Internal failures are logged
// and reported without their message.
func respondError(c echo.Context, err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	if httpErr.IsInternal() {
		slog.Error("request failed",
			"error", err,
			"method", c.Request().Method,
			"path", c.Path(),
		)
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func badRequestBody() error {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: "Invalid request body",
		Code:  "BAD_REQUEST",
	})
}
