package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filesmanager/internal/db"
	"filesmanager/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	gormDB, err := db.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	store := NewGormStore(gormDB)
	require.NoError(t, store.Migrate(context.Background()))
	t.Cleanup(func() { _ = store.Close(context.Background()) })
	return store
}

func TestFileRepository_FindByIDAndOwner(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	file := &model.File{UserID: "owner", Name: "a.txt", Type: model.FileTypeFile, ParentID: model.RootID, LocalPath: "/tmp/x"}
	require.NoError(t, store.Files.Create(ctx, file))
	require.NotEmpty(t, file.ID)

	found, err := store.Files.FindByIDAndOwner(ctx, file.ID, "owner")
	require.NoError(t, err)
	assert.Equal(t, "a.txt", found.Name)
	assert.Equal(t, "/tmp/x", found.LocalPath)

	_, err = store.Files.FindByIDAndOwner(ctx, file.ID, "someone-else")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Files.FindByID(ctx, "does-not-exist")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileRepository_ListByOwner(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	base := time.Now()
	for i := 0; i < 25; i++ {
		require.NoError(t, store.Files.Create(ctx, &model.File{
			UserID:    "owner",
			Name:      fmt.Sprintf("f%02d", i),
			Type:      model.FileTypeFolder,
			ParentID:  model.RootID,
			CreatedAt: base.Add(time.Duration(i) * time.Millisecond),
		}))
	}
	require.NoError(t, store.Files.Create(ctx, &model.File{UserID: "other", Name: "x", Type: model.FileTypeFolder, ParentID: model.RootID}))
	require.NoError(t, store.Files.Create(ctx, &model.File{UserID: "owner", Name: "nested", Type: model.FileTypeFolder, ParentID: "some-folder"}))

	first, err := store.Files.ListByOwner(ctx, "owner", model.RootID, 0, 20)
	require.NoError(t, err)
	require.Len(t, first, 20)
	assert.Equal(t, "f00", first[0].Name)

	second, err := store.Files.ListByOwner(ctx, "owner", model.RootID, 20, 20)
	require.NoError(t, err)
	require.Len(t, second, 5)
	assert.Equal(t, "f24", second[4].Name)

	third, err := store.Files.ListByOwner(ctx, "owner", model.RootID, 40, 20)
	require.NoError(t, err)
	assert.Empty(t, third)

	nested, err := store.Files.ListByOwner(ctx, "owner", "some-folder", 0, 20)
	require.NoError(t, err)
	require.Len(t, nested, 1)
	assert.Equal(t, "nested", nested[0].Name)
}

func TestFileRepository_UpdateVisibility(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	file := &model.File{UserID: "owner", Name: "a.txt", Type: model.FileTypeFile, ParentID: model.RootID}
	require.NoError(t, store.Files.Create(ctx, file))

	require.NoError(t, store.Files.UpdateVisibility(ctx, file.ID, true))
	require.NoError(t, store.Files.UpdateVisibility(ctx, file.ID, true))

	found, err := store.Files.FindByID(ctx, file.ID)
	require.NoError(t, err)
	assert.True(t, found.IsPublic)

	assert.ErrorIs(t, store.Files.UpdateVisibility(ctx, "missing", true), ErrNotFound)

	n, err := store.Files.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestUserRepository_FindByEmail(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	user := &model.User{Email: "bob@example.com", PasswordHash: "hash"}
	require.NoError(t, store.Users.Create(ctx, user))

	found, err := store.Users.FindByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = store.Users.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	n, err := store.Users.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	assert.NoError(t, store.Ping(ctx))
}
