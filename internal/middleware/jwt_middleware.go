package middleware

import (
	"errors"
	"log/slog"
	"strings"

	"stylehive/internal/services"

	"github.com/gofiber/fiber/v2"
)

const (
	localClientID   = "client_id"
	localStorefront = "storefront"
	localAdmin      = "admin_console"
)

// ClientRequired checks the client token and attaches the client's storefront
// to the request.
func ClientRequired(tokens *services.ClientTokenService, registry *services.Registry, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		clientID, err := tokens.Validate(parts[1])
		if err != nil {
			logger.Debug("client token rejected", "error", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired client token",
				"error":   err.Error(),
			})
		}

		c.Locals(localClientID, clientID)
		c.Locals(localStorefront, registry.Get(clientID))
		return c.Next()
	}
}

// AdminRequired lets the request through only when the client's session is the
// admin. Must run after ClientRequired.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		console, err := Storefront(c).Admin(c.UserContext())
		if errors.Is(err, services.ErrAdminRequired) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Admin access required",
			})
		}
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not read session",
				"error":   err.Error(),
			})
		}
		c.Locals(localAdmin, console)
		return c.Next()
	}
}

// Storefront returns the storefront attached by ClientRequired.
func Storefront(c *fiber.Ctx) *services.Storefront {
	front, _ := c.Locals(localStorefront).(*services.Storefront)
	return front
}

// ClientID returns the client id attached by ClientRequired.
func ClientID(c *fiber.Ctx) string {
	id, _ := c.Locals(localClientID).(string)
	return id
}

// AdminConsole returns the console attached by AdminRequired.
func AdminConsole(c *fiber.Ctx) *services.AdminConsole {
	console, _ := c.Locals(localAdmin).(*services.AdminConsole)
	return console
}
