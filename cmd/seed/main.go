package main

import (
	"context"
	"encoding/base64"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"filesmanager/internal/app"
	"filesmanager/internal/config"
	apperrors "filesmanager/internal/errors"
	"filesmanager/internal/logger"
	"filesmanager/internal/model"
	"filesmanager/internal/service"
)

// seedEntry describes a demo record; children are created inside folders.
type seedEntry struct {
	name     string
	typ      model.FileType
	content  string
	public   bool
	children []seedEntry
}

var demoTree = []seedEntry{
	{name: "Documents", typ: model.FileTypeFolder, children: []seedEntry{
		{name: "readme.txt", typ: model.FileTypeFile, content: "Welcome to files manager.\n", public: true},
		{name: "notes.md", typ: model.FileTypeFile, content: "# Notes\n"},
	}},
	{name: "Photos", typ: model.FileTypeFolder},
}

func main() {
	email := flag.String("email", "demo@example.com", "demo user email")
	password := flag.String("password", "demo1234", "demo user password")
	flag.Parse()

	cfg := config.Load()
	logger.Init(cfg.IsDevelopment(), cfg.SentryDSN)

	if err := run(context.Background(), cfg, *email, *password); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
	slog.Info("seed completed", "email", *email)
}

func run(ctx context.Context, cfg *config.Config, email, password string) error {
	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initialize app: %w", err)
	}
	defer func() {
		if closeErr := a.Close(); closeErr != nil {
			slog.Error("failed to close app", "error", closeErr)
		}
	}()
	return seed(ctx, a, email, password)
}

func seed(ctx context.Context, a *app.App, email, password string) error {
	userID, err := ensureUser(ctx, a, email, password)
	if err != nil {
		return err
	}
	return createTree(ctx, a.FileService, userID, model.RootID, demoTree)
}

func ensureUser(ctx context.Context, a *app.App, email, password string) (string, error) {
	user, err := a.AuthService.Register(ctx, email, password)
	if err == nil {
		slog.Info("created demo user", "id", user.ID)
		return user.ID, nil
	}
	if !errors.Is(err, apperrors.ErrUserAlreadyExists) {
		return "", fmt.Errorf("register demo user: %w", err)
	}
	existing, err := a.Store.Users.FindByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("find demo user: %w", err)
	}
	slog.Info("demo user already exists", "id", existing.ID)
	return existing.ID, nil
}

// createTree creates entries below parentID, skipping names that already exist there.
func createTree(ctx context.Context, files service.FileService, userID, parentID string, entries []seedEntry) error {
	existing, err := existingByName(ctx, files, userID, parentID)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		file, ok := existing[entry.name]
		if !ok {
			in := service.CreateFileInput{
				Name:     entry.name,
				Type:     entry.typ,
				ParentID: parentID,
				IsPublic: entry.public,
			}
			if entry.typ != model.FileTypeFolder {
				in.Data = base64.StdEncoding.EncodeToString([]byte(entry.content))
			}
			file, err = files.Create(ctx, userID, in)
			if err != nil {
				return fmt.Errorf("create %s: %w", entry.name, err)
			}
			slog.Info("created", "name", entry.name, "type", entry.typ, "id", file.ID)
		}
		if len(entry.children) > 0 {
			if err := createTree(ctx, files, userID, file.ID, entry.children); err != nil {
				return err
			}
		}
	}
	return nil
}

func existingByName(ctx context.Context, files service.FileService, userID, parentID string) (map[string]*model.File, error) {
	byName := make(map[string]*model.File)
	for page := 0; ; page++ {
		batch, err := files.List(ctx, userID, parentID, page)
		if err != nil {
			return nil, fmt.Errorf("list existing files: %w", err)
		}
		for i := range batch {
			byName[batch[i].Name] = &batch[i]
		}
		if len(batch) < service.PageSize {
			return byName, nil
		}
	}
}
