package handlers

import (
	"log/slog"

	"stylehive/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	logger *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(logger *slog.Logger) *AuthHandler {
	return &AuthHandler{logger: logger}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	authRoutes.Post("/login", h.HandleLogin)
	authRoutes.Post("/logout", h.HandleLogout)
	authRoutes.Get("/session", h.HandleSession)
}

// RegisterRequest represents the request body for registration.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleRegister creates an account and signs it in.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	front := middleware.Storefront(c)
	user, err := front.Auth.Register(c.UserContext(), req.Name, req.Email, req.Password)
	if err != nil {
		h.logger.Info("registration failed", "client_id", front.ClientID, "error", err)
		return errorResponse(c, err, "Registration failed")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"user":    user,
	})
}

// HandleLogin signs in the admin or a stored account.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	front := middleware.Storefront(c)
	user, err := front.Auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		h.logger.Info("login failed", "client_id", front.ClientID, "email", req.Email, "error", err)
		return errorResponse(c, err, "Authentication failed")
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    user,
	})
}

func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	if err := middleware.Storefront(c).Auth.Logout(c.UserContext()); err != nil {
		return errorResponse(c, err, "Logout failed")
	}
	return c.JSON(fiber.Map{"message": "Logged out"})
}

// HandleSession returns the signed-in user, or null.
func (h *AuthHandler) HandleSession(c *fiber.Ctx) error {
	user, err := middleware.Storefront(c).Auth.CurrentSession(c.UserContext())
	if err != nil {
		return errorResponse(c, err, "Could not read session")
	}
	return c.JSON(fiber.Map{"user": user})
}
