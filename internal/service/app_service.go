package service

import (
	"context"
	"fmt"

	"filesmanager/internal/repository"
)

// Pinger is implemented by backends that can report liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Status reports backend liveness.
type Status struct {
	Redis bool `json:"redis"`
	DB    bool `json:"db"`
}

// Stats reports record counts.
type Stats struct {
	Users int64 `json:"users"`
	Files int64 `json:"files"`
}

// AppService exposes service health and usage numbers.
type AppService interface {
	Status(ctx context.Context) Status
	Stats(ctx context.Context) (*Stats, error)
}

type appService struct {
	redis Pinger
	db    Pinger
	users repository.UserRepository
	files repository.FileRepository
}

// NewAppService creates a new app service.
func NewAppService(redis, db Pinger, users repository.UserRepository, files repository.FileRepository) AppService {
	return &appService{redis: redis, db: db, users: users, files: files}
}

func (s *appService) Status(ctx context.Context) Status {
	return Status{
		Redis: s.redis.Ping(ctx) == nil,
		DB:    s.db.Ping(ctx) == nil,
	}
}

func (s *appService) Stats(ctx context.Context) (*Stats, error) {
	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	files, err := s.files.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count files: %w", err)
	}
	return &Stats{Users: users, Files: files}, nil
}
