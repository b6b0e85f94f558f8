package handlers

import (
	"log/slog"

	"stylehive/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler serves the order history of the calling client.
type OrderHandler struct {
	logger *slog.Logger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(logger *slog.Logger) *OrderHandler {
	return &OrderHandler{logger: logger}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/orders", h.HandleGetOrders)
}

// HandleGetOrders lists every order of the client, newest first.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	front := middleware.Storefront(c)
	orders, err := front.Orders.ListAll(c.UserContext())
	if err != nil {
		h.logger.Error("failed to list orders", "client_id", front.ClientID, "error", err)
		return errorResponse(c, err, "Could not retrieve orders")
	}
	return c.JSON(orders)
}
