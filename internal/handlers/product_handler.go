package handlers

import (
	"log/slog"

	"stylehive/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler serves the catalog of the calling client.
type ProductHandler struct {
	logger *slog.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(logger *slog.Logger) *ProductHandler {
	return &ProductHandler{logger: logger}
}

// RegisterRoutes registers the catalog routes.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/products", h.HandleGetProducts)
	router.Get("/products/:id", h.HandleGetProductByID)
	router.Get("/categories", h.HandleGetCategories)
}

// HandleGetProducts lists the catalog, optionally filtered by ?category=.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	front := middleware.Storefront(c)
	products, err := front.Products.ProductsInCategory(c.UserContext(), c.Query("category"))
	if err != nil {
		h.logger.Error("failed to list products", "client_id", front.ClientID, "error", err)
		return errorResponse(c, err, "Could not retrieve products")
	}
	return c.JSON(products)
}

func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, ok, err := idParam(c)
	if !ok {
		return err
	}
	product, err := middleware.Storefront(c).Products.GetProductByID(c.UserContext(), id)
	if err != nil {
		return errorResponse(c, err, "Could not retrieve product")
	}
	return c.JSON(product)
}

func (h *ProductHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := middleware.Storefront(c).Products.Categories(c.UserContext())
	if err != nil {
		return errorResponse(c, err, "Could not retrieve categories")
	}
	return c.JSON(categories)
}
