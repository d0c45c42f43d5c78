package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filesmanager/internal/db"
	"filesmanager/internal/model"
	"filesmanager/internal/queue"
	"filesmanager/internal/repository"
	"filesmanager/internal/storage"
)

type workerFixture struct {
	store   *repository.Store
	storage *storage.LocalStorage
	worker  *ThumbnailWorker
}

func newWorkerFixture(t *testing.T) *workerFixture {
	t.Helper()
	dir := t.TempDir()

	gormDB, err := db.NewSQLite(filepath.Join(dir, "meta.db"))
	require.NoError(t, err)
	store := repository.NewGormStore(gormDB)
	require.NoError(t, store.Migrate(context.Background()))
	t.Cleanup(func() { _ = store.Close(context.Background()) })

	local := storage.NewLocalStorage(filepath.Join(dir, "files"))
	return &workerFixture{store: store, storage: local, worker: NewThumbnailWorker(store.Files, local)}
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func (f *workerFixture) createFile(t *testing.T, name string, typ model.FileType, data []byte) *model.File {
	t.Helper()
	ctx := context.Background()
	path, err := f.storage.Save(ctx, data)
	require.NoError(t, err)
	file := &model.File{UserID: "owner", Name: name, Type: typ, ParentID: model.RootID, LocalPath: path}
	require.NoError(t, f.store.Files.Create(ctx, file))
	return file
}

func thumbnailTask(t *testing.T, userID, fileID string) *asynq.Task {
	t.Helper()
	task, err := queue.NewThumbnailTask(userID, fileID)
	require.NoError(t, err)
	return task
}

func TestThumbnailWorker_GeneratesAllWidths(t *testing.T) {
	f := newWorkerFixture(t)
	file := f.createFile(t, "photo.png", model.FileTypeImage, pngBytes(t, 800, 400))

	require.NoError(t, f.worker.ProcessTask(context.Background(), thumbnailTask(t, "owner", file.ID)))

	for _, width := range model.ThumbnailWidths {
		data, err := os.ReadFile(file.ThumbnailPath(width))
		require.NoError(t, err, "width %d", width)
		cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, "png", format)
		assert.Equal(t, width, cfg.Width)
		assert.Equal(t, width/2, cfg.Height)
	}
}

func TestThumbnailWorker_JPEGName(t *testing.T) {
	f := newWorkerFixture(t)
	file := f.createFile(t, "photo.jpg", model.FileTypeImage, pngBytes(t, 600, 600))

	require.NoError(t, f.worker.ProcessTask(context.Background(), thumbnailTask(t, "owner", file.ID)))

	data, err := os.ReadFile(file.ThumbnailPath(100))
	require.NoError(t, err)
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
}

func TestThumbnailWorker_NonImageIsNoop(t *testing.T) {
	f := newWorkerFixture(t)
	file := f.createFile(t, "notes.txt", model.FileTypeFile, []byte("hello"))

	require.NoError(t, f.worker.ProcessTask(context.Background(), thumbnailTask(t, "owner", file.ID)))
	assert.NoFileExists(t, file.ThumbnailPath(500))
}

func TestThumbnailWorker_UndecodableImageIsSwallowed(t *testing.T) {
	f := newWorkerFixture(t)
	file := f.createFile(t, "broken.png", model.FileTypeImage, []byte("not an image"))

	assert.NoError(t, f.worker.ProcessTask(context.Background(), thumbnailTask(t, "owner", file.ID)))
	assert.NoFileExists(t, file.ThumbnailPath(100))
}

func TestThumbnailWorker_FileNotFound(t *testing.T) {
	f := newWorkerFixture(t)
	file := f.createFile(t, "photo.png", model.FileTypeImage, pngBytes(t, 10, 10))

	err := f.worker.ProcessTask(context.Background(), thumbnailTask(t, "someone-else", file.ID))
	require.Error(t, err)
	assert.NotErrorIs(t, err, asynq.SkipRetry)

	err = f.worker.ProcessTask(context.Background(), thumbnailTask(t, "owner", "missing"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, asynq.SkipRetry)
}

func TestThumbnailWorker_BadPayload(t *testing.T) {
	f := newWorkerFixture(t)

	missingFile, _ := json.Marshal(queue.ThumbnailPayload{UserID: "owner"})
	missingUser, _ := json.Marshal(queue.ThumbnailPayload{FileID: "file"})

	tests := []struct {
		name    string
		payload []byte
		wantMsg string
	}{
		{"missing fileId", missingFile, "missing fileId"},
		{"missing userId", missingUser, "missing userId"},
		{"malformed json", []byte("{"), "unmarshal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.worker.ProcessTask(context.Background(), asynq.NewTask(queue.TypeThumbnail, tt.payload))
			require.Error(t, err)
			assert.ErrorIs(t, err, asynq.SkipRetry)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

// flakyStorage fails writes for the listed suffixes and records the
// context state of the remaining writes.
type flakyStorage struct {
	storage.Storage
	failSuffixes []string

	mu      sync.Mutex
	written []string
}

func (s *flakyStorage) Write(ctx context.Context, path string, data []byte) error {
	for _, suffix := range s.failSuffixes {
		if strings.HasSuffix(path, suffix) {
			return errors.New("disk full")
		}
	}
	time.Sleep(50 * time.Millisecond)
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	s.written = append(s.written, path)
	s.mu.Unlock()
	return s.Storage.Write(ctx, path, data)
}

func TestThumbnailWorker_SizesAreIndependent(t *testing.T) {
	f := newWorkerFixture(t)
	file := f.createFile(t, "photo.png", model.FileTypeImage, pngBytes(t, 800, 400))

	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&logs, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	flaky := &flakyStorage{Storage: f.storage, failSuffixes: []string{"_500", "_100"}}
	w := NewThumbnailWorker(f.store.Files, flaky)

	require.NoError(t, w.ProcessTask(context.Background(), thumbnailTask(t, "owner", file.ID)))

	assert.Equal(t, []string{file.ThumbnailPath(250)}, flaky.written)
	assert.FileExists(t, file.ThumbnailPath(250))
	assert.NoFileExists(t, file.ThumbnailPath(500))

	out := logs.String()
	assert.Equal(t, 2, strings.Count(out, "thumbnail size failed"), out)
	assert.Contains(t, out, "write 500")
	assert.Contains(t, out, "write 100")
}
