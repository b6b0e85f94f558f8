package handlers

import (
	"stylehive/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type WishlistHandler struct{}

func NewWishlistHandler() *WishlistHandler {
	return &WishlistHandler{}
}

func (h *WishlistHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/wishlist", h.HandleGetWishlist)
	router.Post("/wishlist/:id/toggle", h.HandleToggle)
}

func (h *WishlistHandler) HandleGetWishlist(c *fiber.Ctx) error {
	products, err := middleware.Storefront(c).Wishlist.Products(c.UserContext())
	if err != nil {
		return errorResponse(c, err, "Could not retrieve wishlist")
	}
	return c.JSON(products)
}

func (h *WishlistHandler) HandleToggle(c *fiber.Ctx) error {
	id, ok, err := idParam(c)
	if !ok {
		return err
	}
	wished, err := middleware.Storefront(c).Wishlist.Toggle(c.UserContext(), id)
	if err != nil {
		return errorResponse(c, err, "Could not update wishlist")
	}
	return c.JSON(fiber.Map{
		"product_id": id,
		"wished":     wished,
	})
}
