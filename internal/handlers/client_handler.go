package handlers

import (
	"log/slog"

	"stylehive/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ClientHandler hands out client tokens. It is the only public API route.
type ClientHandler struct {
	tokens *services.ClientTokenService
	logger *slog.Logger
}

func NewClientHandler(tokens *services.ClientTokenService, logger *slog.Logger) *ClientHandler {
	return &ClientHandler{tokens: tokens, logger: logger}
}

func (h *ClientHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/clients", h.HandleCreateClient)
}

// HandleCreateClient issues a token for a new, empty storefront.
func (h *ClientHandler) HandleCreateClient(c *fiber.Ctx) error {
	token, clientID, err := h.tokens.Issue()
	if err != nil {
		h.logger.Error("failed to issue client token", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create client",
			"error":   err.Error(),
		})
	}
	h.logger.Info("client created", "client_id", clientID)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"client_id": clientID,
		"token":     token,
	})
}
