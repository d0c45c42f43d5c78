package service

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filesmanager/internal/cache"
	"filesmanager/internal/model"
)

func TestAppService_Status(t *testing.T) {
	mr := miniredis.RunT(t)
	redisClient := cache.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = redisClient.Close() })

	f := newFileServiceFixture(t)
	svc := NewAppService(redisClient, f.store, f.store.Users, f.store.Files)

	assert.Equal(t, Status{Redis: true, DB: true}, svc.Status(context.Background()))

	mr.Close()
	assert.Equal(t, Status{Redis: false, DB: true}, svc.Status(context.Background()))
}

func TestAppService_Stats(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	redisClient := cache.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = redisClient.Close() })

	f := newFileServiceFixture(t)
	svc := NewAppService(redisClient, f.store, f.store.Users, f.store.Files)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, &Stats{}, stats)

	require.NoError(t, f.store.Users.Create(ctx, &model.User{Email: "a@example.com", PasswordHash: "x"}))
	_, err = f.service.Create(ctx, "owner", CreateFileInput{Name: "docs", Type: model.FileTypeFolder})
	require.NoError(t, err)
	_, err = f.service.Create(ctx, "owner", CreateFileInput{Name: "a.txt", Type: model.FileTypeFile, Data: encode("a")})
	require.NoError(t, err)

	stats, err = svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, &Stats{Users: 1, Files: 2}, stats)
}
