package repositories

import (
	"context"
	"errors"

	"stylehive/internal/models"
)

// ErrUserNotFound is returned when no stored account matches.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the interface for account data access.
// Accounts are never edited or deleted.
type UserRepository interface {
	GetAll(ctx context.Context) ([]models.StoredUser, error)
	// FindByEmail matches email case-insensitively.
	FindByEmail(ctx context.Context, email string) (*models.StoredUser, error)
	Create(ctx context.Context, user *models.StoredUser) error
}

// SessionRepository holds the single current session of a client.
type SessionRepository interface {
	// Get returns nil when nobody is signed in.
	Get(ctx context.Context) (*models.User, error)
	Set(ctx context.Context, user *models.User) error
	Clear(ctx context.Context) error
}
