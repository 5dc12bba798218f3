// Package service contains the server-side business logic: account
// registration and login, post CRUD and reaction counters. Services depend
// on storage interfaces so tests can substitute in-memory fakes.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/postboard/postboard/internal/models"
	"github.com/postboard/postboard/internal/server/storage"
	"github.com/postboard/postboard/internal/server/token"
	"github.com/postboard/postboard/internal/validation"
)

// Auth handles account registration and login.
type Auth struct {
	logger *slog.Logger
	users  storage.UserStorage
	tokens token.Config
}

// NewAuth creates a new Auth service.
func NewAuth(logger *slog.Logger, users storage.UserStorage, tokens token.Config) *Auth {
	return &Auth{
		logger: logger,
		users:  users,
		tokens: tokens,
	}
}

// Signup registers a new account. The password is stored only as a bcrypt
// hash at the default cost; the plaintext is never persisted or logged.
// Returns ErrInvalidInput for empty/bad fields and ErrUsernameTaken when the
// username exists. Uniqueness is ultimately enforced by the store's UNIQUE
// index, so two racing signups cannot both succeed.
func (s *Auth) Signup(ctx context.Context, username, password string) (*models.User, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	// Cheap pre-check so the common duplicate case skips the bcrypt work.
	// The UNIQUE index below still catches racing signups.
	if _, err := s.users.GetUserByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, storage.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered",
		slog.String("username", username),
		slog.String("user_id", user.ID))

	return user, nil
}

// Login authenticates a user and issues a signed bearer token.
// Returns ErrInvalidInput for empty fields, ErrUserNotFound for an unknown
// username and ErrInvalidCredentials when the password does not match.
func (s *Auth) Login(ctx context.Context, username, password string) (string, int64, error) {
	if username == "" || password == "" {
		return "", 0, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return "", 0, ErrUserNotFound
		}
		return "", 0, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", 0, ErrInvalidCredentials
	}

	signed, expiresIn, err := token.Issue(s.tokens, user.ID, user.Username)
	if err != nil {
		return "", 0, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.InfoContext(ctx, "user logged in",
		slog.String("username", username),
		slog.String("user_id", user.ID))

	return signed, expiresIn, nil
}
