package storage

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned when no blob exists at a path.
var ErrNotFound = errors.New("blob not found")

// Storage stores binary payloads addressed by opaque paths.
type Storage interface {
	// Save stores data under a freshly generated unique name and returns its path.
	Save(ctx context.Context, data []byte) (string, error)

	// Write stores data at an explicit path, replacing any existing blob.
	Write(ctx context.Context, path string, data []byte) error

	// Read returns the blob at path.
	Read(ctx context.Context, path string) ([]byte, error)

	// Delete removes the blob at path. Missing blobs are not an error.
	Delete(ctx context.Context, path string) error
}

// Type represents the storage backend type.
type Type string

const (
	TypeLocal Type = "local"
	TypeS3    Type = "s3"
)

// Config holds configuration for storage.
type Config struct {
	Type        Type
	LocalPath   string
	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
}

// New creates a storage backend based on configuration.
func New(ctx context.Context, cfg Config) (Storage, error) {
	switch cfg.Type {
	case TypeLocal, "":
		return NewLocalStorage(cfg.LocalPath), nil
	case TypeS3:
		return NewS3Storage(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}
