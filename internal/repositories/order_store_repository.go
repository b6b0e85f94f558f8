package repositories

import (
	"context"
	"fmt"

	"stylehive/internal/models"
	"stylehive/internal/storage"
)

// StoreOrderRepository keeps orders as a single JSON list, newest first.
type StoreOrderRepository struct {
	store storage.Store
}

// NewStoreOrderRepository creates a new instance of StoreOrderRepository.
func NewStoreOrderRepository(store storage.Store) *StoreOrderRepository {
	return &StoreOrderRepository{
		store: store,
	}
}

// GetAll returns all orders. Records written without a status read as Pending.
func (r *StoreOrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if _, err := loadDocument(ctx, r.store, storage.KeyOrders, &orders); err != nil {
		return nil, fmt.Errorf("failed to get all orders: %w", err)
	}
	for i := range orders {
		if orders[i].Status == "" {
			orders[i].Status = models.OrderPending
		}
	}
	return orders, nil
}

// Prepend adds an order at the head of the list.
func (r *StoreOrderRepository) Prepend(ctx context.Context, order *models.Order) error {
	orders, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	orders = append([]models.Order{*order}, orders...)
	if err := saveDocument(ctx, r.store, storage.KeyOrders, orders); err != nil {
		return fmt.Errorf("failed to save order %s: %w", order.ID, err)
	}
	return nil
}

// UpdateStatus updates the status of an order. An unknown id leaves the list untouched.
func (r *StoreOrderRepository) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (bool, error) {
	orders, err := r.GetAll(ctx)
	if err != nil {
		return false, err
	}
	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		orders[i].Status = status
		if err := saveDocument(ctx, r.store, storage.KeyOrders, orders); err != nil {
			return false, fmt.Errorf("failed to update status for order %s: %w", id, err)
		}
		return true, nil
	}
	return false, nil
}
