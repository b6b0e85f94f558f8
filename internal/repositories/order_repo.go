package repositories

import (
	"context"

	"stylehive/internal/models"
)

// OrderRepository defines the interface for order data access.
// Orders are never deleted.
type OrderRepository interface {
	// GetAll returns every order, most recent first.
	GetAll(ctx context.Context) ([]models.Order, error)
	Prepend(ctx context.Context, order *models.Order) error
	// UpdateStatus replaces the status of the matching order and reports whether one matched.
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (bool, error)
}
