package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"path/filepath"

	apperrors "filesmanager/internal/errors"
	"filesmanager/internal/model"
	"filesmanager/internal/queue"
	"filesmanager/internal/repository"
	"filesmanager/internal/storage"
)

// PageSize is the number of records returned per listing page.
const PageSize = 20

const defaultContentType = "application/octet-stream"

// CreateFileInput carries the fields of a new file or folder.
type CreateFileInput struct {
	Name     string
	Type     model.FileType
	ParentID string
	IsPublic bool
	// Data is the base64 encoded payload; required unless Type is folder.
	Data string
}

// Content is the payload of a file together with its media type.
type Content struct {
	Data        []byte
	ContentType string
}

// FileService handles file metadata and payload operations.
type FileService interface {
	Create(ctx context.Context, ownerID string, in CreateFileInput) (*model.File, error)
	Get(ctx context.Context, requesterID, fileID string) (*model.File, error)
	List(ctx context.Context, requesterID, parentID string, page int) ([]model.File, error)
	SetVisibility(ctx context.Context, requesterID, fileID string, isPublic bool) (*model.File, error)
	// ReadContent returns the payload of fileID. requesterID may be empty for anonymous callers.
	ReadContent(ctx context.Context, requesterID, fileID string, size int) (*Content, error)
}

type fileService struct {
	files    repository.FileRepository
	storage  storage.Storage
	enqueuer queue.Enqueuer
}

// NewFileService creates a new file service.
func NewFileService(files repository.FileRepository, storage storage.Storage, enqueuer queue.Enqueuer) FileService {
	return &fileService{
		files:    files,
		storage:  storage,
		enqueuer: enqueuer,
	}
}

func (in *CreateFileInput) validate() error {
	if in.Name == "" {
		return apperrors.Missing("name")
	}
	if !in.Type.Valid() {
		return apperrors.Missing("type")
	}
	if in.Type != model.FileTypeFolder && in.Data == "" {
		return apperrors.Missing("data")
	}
	if in.ParentID == "" {
		in.ParentID = model.RootID
	}
	return nil
}

// Create validates the input, stores the payload and persists the record.
func (s *fileService) Create(ctx context.Context, ownerID string, in CreateFileInput) (*model.File, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var payload []byte
	if in.Type != model.FileTypeFolder {
		decoded, err := base64.StdEncoding.DecodeString(in.Data)
		if err != nil {
			return nil, apperrors.Invalid("data")
		}
		payload = decoded
	}

	if in.ParentID != model.RootID {
		parent, err := s.files.FindByID(ctx, in.ParentID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, apperrors.ErrParentNotFound
			}
			return nil, fmt.Errorf("find parent: %w", err)
		}
		if !parent.IsFolder() {
			return nil, apperrors.ErrParentNotFolder
		}
	}

	file := &model.File{
		UserID:   ownerID,
		Name:     in.Name,
		Type:     in.Type,
		IsPublic: in.IsPublic,
		ParentID: in.ParentID,
	}

	if in.Type != model.FileTypeFolder {
		path, err := s.storage.Save(ctx, payload)
		if err != nil {
			return nil, fmt.Errorf("save payload: %w", err)
		}
		file.LocalPath = path
	}

	if err := s.files.Create(ctx, file); err != nil {
		if file.LocalPath != "" {
			if delErr := s.storage.Delete(ctx, file.LocalPath); delErr != nil {
				slog.Error("failed to delete payload during cleanup", "error", delErr, "path", file.LocalPath)
			}
		}
		return nil, fmt.Errorf("create file record: %w", err)
	}

	if file.Type == model.FileTypeImage {
		// Enqueue failures leave the upload intact.
		if err := s.enqueuer.EnqueueThumbnail(ctx, ownerID, file.ID); err != nil {
			slog.Error("failed to enqueue thumbnail job", "error", err, "file_id", file.ID)
		}
	}

	return file, nil
}

// Get returns fileID if requesterID owns it.
func (s *fileService) Get(ctx context.Context, requesterID, fileID string) (*model.File, error) {
	file, err := s.files.FindByIDAndOwner(ctx, fileID, requesterID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find file: %w", err)
	}
	return file, nil
}

// List returns one page of requesterID's files below parentID.
func (s *fileService) List(ctx context.Context, requesterID, parentID string, page int) ([]model.File, error) {
	if parentID == "" {
		parentID = model.RootID
	}
	if page < 0 {
		page = 0
	}
	files, err := s.files.ListByOwner(ctx, requesterID, parentID, page*PageSize, PageSize)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	return files, nil
}

// SetVisibility publishes or unpublishes a file owned by requesterID.
func (s *fileService) SetVisibility(ctx context.Context, requesterID, fileID string, isPublic bool) (*model.File, error) {
	file, err := s.Get(ctx, requesterID, fileID)
	if err != nil {
		return nil, err
	}
	if err := s.files.UpdateVisibility(ctx, file.ID, isPublic); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("update visibility: %w", err)
	}
	file.IsPublic = isPublic
	return file, nil
}

// ReadContent returns the original payload, or the derivative of the given
// width when size is one of model.ThumbnailWidths.
func (s *fileService) ReadContent(ctx context.Context, requesterID, fileID string, size int) (*Content, error) {
	file, err := s.files.FindByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find file: %w", err)
	}

	if !file.IsPublic && (requesterID == "" || requesterID != file.UserID) {
		return nil, apperrors.ErrNotFound
	}
	if file.IsFolder() {
		return nil, apperrors.ErrIsFolder
	}

	path := file.LocalPath
	if model.IsThumbnailWidth(size) {
		path = file.ThumbnailPath(size)
	}

	data, err := s.storage.Read(ctx, path)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			slog.Warn("failed to read payload", "error", err, "file_id", file.ID, "path", path)
		}
		return nil, apperrors.ErrNotFound
	}

	return &Content{Data: data, ContentType: contentTypeFor(file.Name)}, nil
}

func contentTypeFor(name string) string {
	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		return ct
	}
	return defaultContentType
}
