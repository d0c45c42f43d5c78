package worker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/disintegration/imaging"
	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"

	"filesmanager/internal/model"
	"filesmanager/internal/queue"
	"filesmanager/internal/repository"
	"filesmanager/internal/storage"
)

// ThumbnailWorker generates width-bounded derivatives of uploaded images.
type ThumbnailWorker struct {
	files   repository.FileRepository
	storage storage.Storage
}

// NewThumbnailWorker creates a new thumbnail worker.
func NewThumbnailWorker(files repository.FileRepository, storage storage.Storage) *ThumbnailWorker {
	return &ThumbnailWorker{files: files, storage: storage}
}

// ProcessTask handles a queue.TypeThumbnail task.
//
// Malformed payloads are not retried. A file that cannot be found fails the
// task so asynq retries it. Failures while rendering individual sizes are
// logged and do not fail the task.
func (w *ThumbnailWorker) ProcessTask(ctx context.Context, t *asynq.Task) error {
	p, err := queue.ParseThumbnailPayload(t)
	if err != nil {
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}
	if p.FileID == "" {
		return fmt.Errorf("missing fileId: %w", asynq.SkipRetry)
	}
	if p.UserID == "" {
		return fmt.Errorf("missing userId: %w", asynq.SkipRetry)
	}

	file, err := w.files.FindByIDAndOwner(ctx, p.FileID, p.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("file %s not found", p.FileID)
		}
		return fmt.Errorf("find file: %w", err)
	}
	if file.Type != model.FileTypeImage {
		return nil
	}

	if err := w.generate(ctx, file); err != nil {
		slog.Error("thumbnail generation failed", "error", err, "file_id", file.ID)
	}
	return nil
}

func (w *ThumbnailWorker) generate(ctx context.Context, file *model.File) error {
	data, err := w.storage.Read(ctx, file.LocalPath)
	if err != nil {
		return fmt.Errorf("read original: %w", err)
	}
	src, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}

	format, err := imaging.FormatFromFilename(file.Name)
	if err != nil {
		format = imaging.PNG
	}

	// Widths are independent: no shared cancellation, every failure is logged.
	var g errgroup.Group
	for _, width := range model.ThumbnailWidths {
		width := width
		g.Go(func() error {
			if err := w.writeThumbnail(ctx, file, src, format, width); err != nil {
				slog.Error("thumbnail size failed", "error", err, "file_id", file.ID, "width", width)
			}
			return nil
		})
	}
	return g.Wait()
}

func (w *ThumbnailWorker) writeThumbnail(ctx context.Context, file *model.File, src image.Image, format imaging.Format, width int) error {
	dst := imaging.Resize(src, width, 0, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, dst, format); err != nil {
		return fmt.Errorf("encode %d: %w", width, err)
	}
	path := file.ThumbnailPath(width)
	if err := w.storage.Write(ctx, path, buf.Bytes()); err != nil {
		return fmt.Errorf("write %d: %w", width, err)
	}
	slog.Debug("thumbnail generated", "file_id", file.ID, "path", path)
	return nil
}
