package handlers

import (
	"fmt"
	"log/slog"

	"stylehive/internal/middleware"
	"stylehive/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// CreateProductRequest is the admin form for a new product.
type CreateProductRequest struct {
	Name     string          `json:"name" validate:"required,max=100"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
	Image    string          `json:"image" validate:"omitempty,url"`
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" validate:"required"`
}

// AdminHandler serves the admin console. Routes are mounted behind
// middleware.AdminRequired.
type AdminHandler struct {
	logger *slog.Logger
}

func NewAdminHandler(logger *slog.Logger) *AdminHandler {
	return &AdminHandler{logger: logger}
}

func (h *AdminHandler) RegisterRoutes(router fiber.Router) {
	adminRoutes := router.Group("/admin", middleware.AdminRequired())
	adminRoutes.Get("/products", h.HandleGetProducts)
	adminRoutes.Post("/products", h.HandleCreateProduct)
	adminRoutes.Delete("/products/:id", h.HandleDeleteProduct)
	adminRoutes.Get("/orders", h.HandleGetOrders)
	adminRoutes.Patch("/orders/:id/status", h.HandleUpdateOrderStatus)
}

func (h *AdminHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := middleware.AdminConsole(c).ListProducts(c.UserContext())
	if err != nil {
		return errorResponse(c, err, "Could not retrieve products")
	}
	return c.JSON(products)
}

func (h *AdminHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req CreateProductRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	product, err := middleware.AdminConsole(c).AddProduct(c.UserContext(), models.Product{
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
		Image:    req.Image,
	})
	if err != nil {
		return errorResponse(c, err, "Could not create product")
	}
	h.logger.Info("product added", "client_id", middleware.ClientID(c), "product_id", product.ID)
	return c.Status(fiber.StatusCreated).JSON(product)
}

func (h *AdminHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, ok, err := idParam(c)
	if !ok {
		return err
	}
	if err := middleware.AdminConsole(c).DeleteProduct(c.UserContext(), id); err != nil {
		return errorResponse(c, err, "Could not delete product")
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Product %d deleted successfully", id),
	})
}

func (h *AdminHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := middleware.AdminConsole(c).ListOrders(c.UserContext())
	if err != nil {
		return errorResponse(c, err, "Could not retrieve orders")
	}
	return c.JSON(orders)
}

// HandleUpdateOrderStatus changes the status of an order. Unknown order ids
// are accepted and change nothing.
func (h *AdminHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	orderID := c.Params("id")
	var req UpdateOrderStatusRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	if err := middleware.AdminConsole(c).UpdateOrderStatus(c.UserContext(), orderID, req.Status); err != nil {
		return errorResponse(c, err, "Could not update order status")
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Order %s status updated successfully to %s", orderID, req.Status),
	})
}
