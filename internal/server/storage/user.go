package storage

import (
	"context"

	"github.com/postboard/postboard/internal/models"
)

// UserStorage defines the interface for credential persistence.
// Username uniqueness is enforced by the store itself: a UNIQUE constraint
// violation surfaces as ErrUserAlreadyExists.
type UserStorage interface {
	// CreateUser creates a new user in the storage.
	// Returns ErrUserAlreadyExists if the username is taken.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByUsername retrieves user by username.
	// Returns ErrUserNotFound if user doesn't exist.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// GetUserByID retrieves user by ID.
	// Returns ErrUserNotFound if user doesn't exist.
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
}
