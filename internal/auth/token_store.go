package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"filesmanager/internal/cache"
)

// SessionExpiry is the default lifetime of a session token.
const SessionExpiry = 24 * time.Hour

const sessionKeyPrefix = "auth_"

// TokenStoreInterface defines the interface for session token storage operations.
type TokenStoreInterface interface {
	StoreSession(ctx context.Context, token, userID string, ttl time.Duration) error
	// GetSession returns the user bound to token, or "" when the session is absent or expired.
	GetSession(ctx context.Context, token string) (string, error)
	DeleteSession(ctx context.Context, token string) error
}

// TokenStore keeps session tokens in Redis under auth_<token>.
type TokenStore struct {
	cache *cache.Client
}

// Ensure TokenStore implements TokenStoreInterface
var _ TokenStoreInterface = (*TokenStore)(nil)

// NewTokenStore creates a new token store.
func NewTokenStore(cache *cache.Client) *TokenStore {
	return &TokenStore{cache: cache}
}

// GenerateToken returns a new opaque session token.
func GenerateToken() string {
	return uuid.New().String()
}

// StoreSession binds token to userID for ttl.
func (s *TokenStore) StoreSession(ctx context.Context, token, userID string, ttl time.Duration) error {
	if err := s.cache.Set(ctx, sessionKeyPrefix+token, []byte(userID), ttl); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

// GetSession looks up the user bound to token.
func (s *TokenStore) GetSession(ctx context.Context, token string) (string, error) {
	data, err := s.cache.Get(ctx, sessionKeyPrefix+token)
	if err != nil {
		return "", fmt.Errorf("get session: %w", err)
	}
	return string(data), nil
}

// DeleteSession removes a session.
func (s *TokenStore) DeleteSession(ctx context.Context, token string) error {
	if err := s.cache.Delete(ctx, sessionKeyPrefix+token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
