package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"gorm.io/gorm"

	"filesmanager/internal/model"
)

var (
	// ErrNotFound is returned when a lookup matches no record.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique constraint is violated.
	ErrDuplicate = errors.New("duplicate record")
)

type backend interface {
	migrate(ctx context.Context) error
	ping(ctx context.Context) error
	close(ctx context.Context) error
}

// Store bundles the repositories of one metadata backend with its lifecycle.
type Store struct {
	Users UserRepository
	Files FileRepository

	backend backend
}

// NewGormStore builds a Store over a relational database.
func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Users:   NewUserRepository(db),
		Files:   NewFileRepository(db),
		backend: gormBackend{db: db},
	}
}

// NewMongoStore builds a Store over the named MongoDB database.
func NewMongoStore(client *mongo.Client, database string) *Store {
	db := client.Database(database)
	return &Store{
		Users:   NewMongoUserRepository(db),
		Files:   NewMongoFileRepository(db),
		backend: mongoBackend{client: client, db: db},
	}
}

// Migrate creates tables or indexes.
func (s *Store) Migrate(ctx context.Context) error {
	return s.backend.migrate(ctx)
}

// Ping reports whether the backend is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.backend.ping(ctx)
}

// Close releases the backend connections.
func (s *Store) Close(ctx context.Context) error {
	return s.backend.close(ctx)
}

type gormBackend struct {
	db *gorm.DB
}

func (b gormBackend) migrate(ctx context.Context) error {
	if err := b.db.WithContext(ctx).AutoMigrate(&model.User{}, &model.File{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

func (b gormBackend) ping(ctx context.Context) error {
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (b gormBackend) close(context.Context) error {
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

type mongoBackend struct {
	client *mongo.Client
	db     *mongo.Database
}

func (b mongoBackend) migrate(ctx context.Context) error {
	if err := ensureMongoIndexes(ctx, b.db); err != nil {
		return fmt.Errorf("create indexes: %w", err)
	}
	return nil
}

func (b mongoBackend) ping(ctx context.Context) error {
	return b.client.Ping(ctx, nil)
}

func (b mongoBackend) close(ctx context.Context) error {
	return b.client.Disconnect(ctx)
}
