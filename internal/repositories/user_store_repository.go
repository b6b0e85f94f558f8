package repositories

import (
	"context"
	"fmt"
	"strings"

	"stylehive/internal/models"
	"stylehive/internal/storage"
)

// StoreUserRepository keeps accounts as a single JSON list.
type StoreUserRepository struct {
	store storage.Store
}

// NewStoreUserRepository creates a new instance of StoreUserRepository.
func NewStoreUserRepository(store storage.Store) *StoreUserRepository {
	return &StoreUserRepository{
		store: store,
	}
}

// GetAll returns every stored account.
func (r *StoreUserRepository) GetAll(ctx context.Context) ([]models.StoredUser, error) {
	var users []models.StoredUser
	if _, err := loadDocument(ctx, r.store, storage.KeyUsers, &users); err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	return users, nil
}

// FindByEmail retrieves an account by email, ignoring case.
func (r *StoreUserRepository) FindByEmail(ctx context.Context, email string) (*models.StoredUser, error) {
	users, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUserNotFound, email)
}

// Create appends an account.
func (r *StoreUserRepository) Create(ctx context.Context, user *models.StoredUser) error {
	users, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	users = append(users, *user)
	if err := saveDocument(ctx, r.store, storage.KeyUsers, users); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// StoreSessionRepository keeps the current session as a single JSON record.
type StoreSessionRepository struct {
	store storage.Store
}

func NewStoreSessionRepository(store storage.Store) *StoreSessionRepository {
	return &StoreSessionRepository{store: store}
}

func (r *StoreSessionRepository) Get(ctx context.Context) (*models.User, error) {
	var user models.User
	found, err := loadDocument(ctx, r.store, storage.KeySession, &user)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &user, nil
}

func (r *StoreSessionRepository) Set(ctx context.Context, user *models.User) error {
	return saveDocument(ctx, r.store, storage.KeySession, user)
}

func (r *StoreSessionRepository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, storage.KeySession)
}
