package handler

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"filesmanager/internal/errors"
	"filesmanager/internal/model"
	"filesmanager/internal/service"
)

// FileHandler handles file endpoints.
type FileHandler struct {
	authService service.AuthService
	fileService service.FileService
}

// NewFileHandler creates a new file handler.
func NewFileHandler(authService service.AuthService, fileService service.FileService) *FileHandler {
	return &FileHandler{authService: authService, fileService: fileService}
}

// ParentID accepts a JSON number or string and holds it as a string.
// Any number equal to zero is the root.
type ParentID string

// UnmarshalJSON implements json.Unmarshaler.
func (p *ParentID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = ParentID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return stderrors.New("parentId must be a string or a number")
	}
	if f, err := n.Float64(); err == nil && f == 0 {
		*p = ParentID(model.RootID)
		return nil
	}
	*p = ParentID(n.String())
	return nil
}

// CreateFileRequest represents an upload request.
type CreateFileRequest struct {
	Name     string   `json:"name" validate:"required"`
	Type     string   `json:"type" validate:"required,oneof=folder file image"`
	ParentID ParentID `json:"parentId" swaggertype:"string" example:"0"`
	IsPublic bool     `json:"isPublic"`
	// Data is the base64 encoded payload.
	Data string `json:"data" validate:"required_unless=Type folder"`
}

// Upload godoc
// @Summary Create a file, image or folder
// @Tags files
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body CreateFileRequest true "File data"
// @Success 201 {object} model.File
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /files [post]
func (h *FileHandler) Upload(c echo.Context) error {
	var req CreateFileRequest
	if err := c.Bind(&req); err != nil {
		return badRequestBody()
	}

	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	file, err := h.fileService.Create(c.Request().Context(), UserIDFromContext(c), service.CreateFileInput{
		Name:     req.Name,
		Type:     model.FileType(req.Type),
		ParentID: string(req.ParentID),
		IsPublic: req.IsPublic,
		Data:     req.Data,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, file)
}

// Show godoc
// @Summary Get a file
// @Tags files
// @Produce json
// @Security TokenAuth
// @Param id path string true "File ID"
// @Success 200 {object} model.File
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /files/{id} [get]
func (h *FileHandler) Show(c echo.Context) error {
	file, err := h.fileService.Get(c.Request().Context(), UserIDFromContext(c), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, file)
}

// Index godoc
// @Summary List files below a parent
// @Tags files
// @Produce json
// @Security TokenAuth
// @Param parentId query string false "Parent folder ID" default(0)
// @Param page query int false "Page number" default(0)
// @Success 200 {array} model.File
// @Failure 401 {object} errors.ErrorResponse
// @Router /files [get]
func (h *FileHandler) Index(c echo.Context) error {
	parentID := c.QueryParam("parentId")
	if parentID == "" {
		parentID = model.RootID
	}
	page, _ := strconv.Atoi(c.QueryParam("page"))

	files, err := h.fileService.List(c.Request().Context(), UserIDFromContext(c), parentID, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, files)
}

// Publish godoc
// @Summary Make a file public
// @Tags files
// @Produce json
// @Security TokenAuth
// @Param id path string true "File ID"
// @Success 200 {object} model.File
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /files/{id}/publish [put]
func (h *FileHandler) Publish(c echo.Context) error {
	return h.setVisibility(c, true)
}

// Unpublish godoc
// @Summary Make a file private
// @Tags files
// @Produce json
// @Security TokenAuth
// @Param id path string true "File ID"
// @Success 200 {object} model.File
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /files/{id}/unpublish [put]
func (h *FileHandler) Unpublish(c echo.Context) error {
	return h.setVisibility(c, false)
}

func (h *FileHandler) setVisibility(c echo.Context, isPublic bool) error {
	file, err := h.fileService.SetVisibility(c.Request().Context(), UserIDFromContext(c), c.Param("id"), isPublic)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, file)
}

// Data godoc
// @Summary Download file content
// @Description Public files need no token. size selects a 100, 250 or 500 px wide thumbnail of an image.
// @Tags files
// @Produce octet-stream
// @Param id path string true "File ID"
// @Param size query int false "Thumbnail width"
// @Param X-Token header string false "Session token"
// @Success 200 {file} binary
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /files/{id}/data [get]
func (h *FileHandler) Data(c echo.Context) error {
	ctx := c.Request().Context()

	var requesterID string
	if token := c.Request().Header.Get(HeaderToken); token != "" {
		userID, err := h.authService.Authenticate(ctx, token)
		switch {
		case err == nil:
			requesterID = userID
		case !stderrors.Is(err, errors.ErrUnauthorized):
			slog.Warn("token lookup failed, serving anonymously", "error", err)
		}
	}
	size, _ := strconv.Atoi(c.QueryParam("size"))

	content, err := h.fileService.ReadContent(ctx, requesterID, c.Param("id"), size)
	if err != nil {
		return respondError(c, err)
	}
	return c.Blob(http.StatusOK, content.ContentType, content.Data)
}
