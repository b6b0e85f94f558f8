package handlers

import (
	"stylehive/internal/middleware"
	"stylehive/internal/models"
	"stylehive/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// CartResponse is the cart as the drawer renders it.
type CartResponse struct {
	Items []models.CartItem `json:"items"`
	Count int               `json:"count"`
	Total decimal.Decimal   `json:"total"`
	Open  bool              `json:"open"`
}

func cartResponse(cart *services.Cart) CartResponse {
	return CartResponse{
		Items: cart.Items(),
		Count: cart.Count(),
		Total: cart.Total(),
		Open:  cart.IsOpen(),
	}
}

type AddToCartRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartHandler handles the in-memory cart of the calling client.
type CartHandler struct{}

func NewCartHandler() *CartHandler {
	return &CartHandler{}
}

func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Patch("/items/:id", h.HandleUpdateQuantity)
	cartRoutes.Delete("/items/:id", h.HandleRemoveItem)
	cartRoutes.Post("/close", h.HandleClosePanel)
}

func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	return c.JSON(cartResponse(middleware.Storefront(c).Cart))
}

// HandleAddItem adds one unit of a catalog product and opens the cart panel.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req AddToCartRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	front := middleware.Storefront(c)
	if _, err := front.AddToCart(c.UserContext(), req.ProductID); err != nil {
		return errorResponse(c, err, "Could not add product to cart")
	}
	return c.Status(fiber.StatusCreated).JSON(cartResponse(front.Cart))
}

// HandleUpdateQuantity sets the quantity of a line. Zero or negative quantities
// are rejected; use DELETE to remove a line.
func (h *CartHandler) HandleUpdateQuantity(c *fiber.Ctx) error {
	id, ok, err := idParam(c)
	if !ok {
		return err
	}
	var req UpdateQuantityRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	front := middleware.Storefront(c)
	if err := front.Cart.UpdateQuantity(id, req.Quantity); err != nil {
		return errorResponse(c, err, "Could not update quantity")
	}
	return c.JSON(cartResponse(front.Cart))
}

func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	id, ok, err := idParam(c)
	if !ok {
		return err
	}
	front := middleware.Storefront(c)
	front.Cart.Remove(id)
	return c.JSON(cartResponse(front.Cart))
}

func (h *CartHandler) HandleClosePanel(c *fiber.Ctx) error {
	front := middleware.Storefront(c)
	front.Cart.ClosePanel()
	return c.JSON(cartResponse(front.Cart))
}
