package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"filesmanager/internal/auth"
	apperrors "filesmanager/internal/errors"
	"filesmanager/internal/model"
	"filesmanager/internal/repository"
)

const bcryptCost = 10

// AuthService handles registration and session token operations.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (token string, err error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (userID string, err error)
}

type authService struct {
	userRepo   repository.UserRepository
	tokenStore auth.TokenStoreInterface
	sessionTTL time.Duration
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, tokenStore auth.TokenStoreInterface, sessionTTL time.Duration) AuthService {
	if sessionTTL <= 0 {
		sessionTTL = auth.SessionExpiry
	}
	return &authService{
		userRepo:   userRepo,
		tokenStore: tokenStore,
		sessionTTL: sessionTTL,
	}
}

// Register creates a new user with a hashed password.
func (s *authService) Register(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" {
		return nil, apperrors.Missing("email")
	}
	if password == "" {
		return nil, apperrors.Missing("password")
	}

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrUserAlreadyExists
	}
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// lost a race against a concurrent registration
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and opens a session.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", apperrors.ErrUnauthorized
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", apperrors.ErrUnauthorized
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apperrors.ErrUnauthorized
	}

	token := auth.GenerateToken()
	if err := s.tokenStore.StoreSession(ctx, token, user.ID, s.sessionTTL); err != nil {
		return "", err
	}
	return token, nil
}

// Logout closes the session bound to token.
func (s *authService) Logout(ctx context.Context, token string) error {
	if _, err := s.Authenticate(ctx, token); err != nil {
		return err
	}
	return s.tokenStore.DeleteSession(ctx, token)
}

// Authenticate resolves token to the user it was issued for.
func (s *authService) Authenticate(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", apperrors.ErrUnauthorized
	}
	userID, err := s.tokenStore.GetSession(ctx, token)
	if err != nil {
		return "", err
	}
	if userID == "" {
		return "", apperrors.ErrUnauthorized
	}
	return userID, nil
}
