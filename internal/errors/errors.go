package errors

import (
	"errors"
	"net/http"
	"strings"
)

var (
	// ErrUnauthorized is returned for missing, invalid or expired tokens and credentials.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound covers both missing records and records the caller may not see.
	ErrNotFound = errors.New("not found")
	// ErrIsFolder is returned when content is requested for a folder.
	ErrIsFolder = errors.New("a folder doesn't have content")
	// ErrParentNotFound is returned when parentId does not resolve.
	ErrParentNotFound = errors.New("parent not found")
	// ErrParentNotFolder is returned when parentId resolves to a non-folder.
	ErrParentNotFolder = errors.New("parent is not a folder")
	// ErrUserAlreadyExists is returned when registering a taken email.
	ErrUserAlreadyExists = errors.New("already exist")
)

// ValidationError reports a missing or invalid required field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason + " " + e.Field
}

// Missing creates a ValidationError for an absent field.
func Missing(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "missing"}
}

// Invalid creates a ValidationError for a malformed field.
func Invalid(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "invalid"}
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// IsInternal reports whether the mapped error is a server-side failure.
func (e *HTTPError) IsInternal() bool {
	return e.StatusCode >= http.StatusInternalServerError
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		return NewHTTPError(http.StatusBadRequest, capitalize(validationErr.Error()), "VALIDATION_ERROR")
	case errors.Is(err, ErrUnauthorized):
		return NewHTTPError(http.StatusUnauthorized, "Unauthorized", "UNAUTHORIZED")
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, "Not found", "NOT_FOUND")
	case errors.Is(err, ErrIsFolder):
		return NewHTTPError(http.StatusBadRequest, "A folder doesn't have content", "IS_FOLDER")
	case errors.Is(err, ErrParentNotFound):
		return NewHTTPError(http.StatusBadRequest, "Parent not found", "PARENT_NOT_FOUND")
	case errors.Is(err, ErrParentNotFolder):
		return NewHTTPError(http.StatusBadRequest, "Parent is not a folder", "PARENT_NOT_FOLDER")
	case errors.Is(err, ErrUserAlreadyExists):
		return NewHTTPError(http.StatusBadRequest, "Already exist", "ALREADY_EXISTS")
	default:
		return NewHTTPError(http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR")
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
