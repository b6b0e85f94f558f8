package services

import (
	"context"
	"fmt"
	"log/slog"

	"stylehive/internal/metrics"
	"stylehive/internal/models"
	"stylehive/internal/repositories"
)

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo repositories.OrderRepository
	logger    *slog.Logger
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, logger *slog.Logger) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// Append records a new order at the head of the list.
func (s *OrderService) Append(ctx context.Context, order *models.Order) error {
	if err := s.orderRepo.Prepend(ctx, order); err != nil {
		return fmt.Errorf("failed to append order %s: %w", order.ID, err)
	}
	metrics.OrdersCreated.Inc()
	return nil
}

// ListAll returns every order, most recent first.
func (s *OrderService) ListAll(ctx context.Context) ([]models.Order, error) {
	return s.orderRepo.GetAll(ctx)
}

// UpdateStatus replaces the status of an order. Items and total are never touched.
// An unknown id is a no-op. No record is kept of who changed the status.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidOrderStatus, status)
	}

	found, err := s.orderRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return fmt.Errorf("failed to update order status for order %s: %w", id, err)
	}
	if !found {
		s.logger.DebugContext(ctx, "status update for unknown order ignored", "order_id", id)
		return nil
	}
	metrics.OrderStatusUpdates.WithLabelValues(string(status)).Inc()
	return nil
}
