package handlers

import (
	"log/slog"

	"stylehive/internal/middleware"
	"stylehive/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RegisterAPI mounts the storefront API on router. Only client creation is
// public; everything else needs a client token.
func RegisterAPI(router fiber.Router, tokens *services.ClientTokenService, registry *services.Registry, logger *slog.Logger) {
	NewClientHandler(tokens, logger).RegisterRoutes(router)

	protected := router.Group("", middleware.ClientRequired(tokens, registry, logger))
	NewProductHandler(logger).RegisterRoutes(protected)
	NewCartHandler().RegisterRoutes(protected)
	NewWishlistHandler().RegisterRoutes(protected)
	NewCheckoutHandler(logger).RegisterRoutes(protected)
	NewOrderHandler(logger).RegisterRoutes(protected)
	NewAuthHandler(logger).RegisterRoutes(protected)
	NewAdminHandler(logger).RegisterRoutes(protected)
}
