package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"filesmanager/internal/cache"
	apperrors "filesmanager/internal/errors"
	"filesmanager/internal/model"
	"filesmanager/internal/repository"
)

// Users never change after registration, so cached entries only age out.
const userCacheTTL = 5 * time.Minute

// UserService exposes user lookups.
type UserService interface {
	GetUser(ctx context.Context, id string) (*model.User, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) cacheKey(id string) string {
	return fmt.Sprintf("user:%s", id)
}

// GetUser returns the user with id, or ErrNotFound.
func (s *userService) GetUser(ctx context.Context, id string) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if payload, err := json.Marshal(cachedUser{ID: user.ID, Email: user.Email}); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}

// cachedUser is the cache representation; the password hash stays out of Redis.
type cachedUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
