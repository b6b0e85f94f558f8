package handlers

import (
	"io"
	"log/slog"
	"mime/multipart"

	"stylehive/internal/middleware"
	"stylehive/internal/models"
	"stylehive/internal/services"

	"github.com/gofiber/fiber/v2"
)

type SelectShippingRequest struct {
	ShippingID string `json:"shipping_id" validate:"required"`
}

// CheckoutHandler drives the checkout wizard of the calling client.
type CheckoutHandler struct {
	logger *slog.Logger
}

func NewCheckoutHandler(logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{logger: logger}
}

func (h *CheckoutHandler) RegisterRoutes(router fiber.Router) {
	checkoutRoutes := router.Group("/checkout")
	checkoutRoutes.Post("/", h.HandleBegin)
	checkoutRoutes.Get("/", h.HandleGet)
	checkoutRoutes.Put("/shipping", h.HandleSelectShipping)
	checkoutRoutes.Put("/payment", h.HandlePayment)
	checkoutRoutes.Post("/next", h.HandleNext)
	checkoutRoutes.Post("/back", h.HandleBack)
	checkoutRoutes.Post("/submit", h.HandleSubmit)
}

// wizardError reports a failed wizard action together with the wizard state,
// so the caller can render the inline message.
func wizardError(c *fiber.Ctx, checkout *services.Checkout, err error, message string) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{
		"message":  message,
		"error":    err.Error(),
		"checkout": checkout.View(),
	})
}

// HandleBegin opens a fresh wizard over the current cart.
func (h *CheckoutHandler) HandleBegin(c *fiber.Ctx) error {
	checkout, err := middleware.Storefront(c).BeginCheckout()
	if err != nil {
		return errorResponse(c, err, "Could not start checkout")
	}
	return c.Status(fiber.StatusCreated).JSON(checkout.View())
}

func (h *CheckoutHandler) HandleGet(c *fiber.Ctx) error {
	checkout, err := middleware.Storefront(c).Checkout()
	if err != nil {
		return errorResponse(c, err, "No checkout in progress")
	}
	return c.JSON(checkout.View())
}

func (h *CheckoutHandler) HandleSelectShipping(c *fiber.Ctx) error {
	checkout, err := middleware.Storefront(c).Checkout()
	if err != nil {
		return errorResponse(c, err, "No checkout in progress")
	}
	var req SelectShippingRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	if err := checkout.SelectShipping(req.ShippingID); err != nil {
		return wizardError(c, checkout, err, "Could not select shipping")
	}
	return c.JSON(checkout.View())
}

// HandlePayment takes a multipart form with phone, email and an optional
// receipt file. Leaving the file out keeps the one uploaded before.
func (h *CheckoutHandler) HandlePayment(c *fiber.Ctx) error {
	front := middleware.Storefront(c)
	checkout, err := front.Checkout()
	if err != nil {
		return errorResponse(c, err, "No checkout in progress")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Payment details must be sent as multipart form data",
			"error":   err.Error(),
		})
	}

	var file *models.ReceiptFile
	if headers := form.File["receipt"]; len(headers) > 0 {
		file, err = readReceipt(headers[0])
		if err != nil {
			h.logger.Warn("failed to read receipt upload", "client_id", front.ClientID, "error", err)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Could not read receipt",
				"error":   err.Error(),
			})
		}
	}

	if err := checkout.SetPaymentDetails(c.UserContext(), formValue(form, "phone"), formValue(form, "email"), file); err != nil {
		return wizardError(c, checkout, err, "Could not save payment details")
	}
	return c.JSON(checkout.View())
}

func formValue(form *multipart.Form, key string) string {
	if values := form.Value[key]; len(values) > 0 {
		return values[0]
	}
	return ""
}

func readReceipt(header *multipart.FileHeader) (*models.ReceiptFile, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &models.ReceiptFile{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func (h *CheckoutHandler) HandleNext(c *fiber.Ctx) error {
	checkout, err := middleware.Storefront(c).Checkout()
	if err != nil {
		return errorResponse(c, err, "No checkout in progress")
	}
	if err := checkout.Next(); err != nil {
		return wizardError(c, checkout, err, "Could not continue")
	}
	return c.JSON(checkout.View())
}

func (h *CheckoutHandler) HandleBack(c *fiber.Ctx) error {
	checkout, err := middleware.Storefront(c).Checkout()
	if err != nil {
		return errorResponse(c, err, "No checkout in progress")
	}
	if err := checkout.Back(); err != nil {
		return wizardError(c, checkout, err, "Could not go back")
	}
	return c.JSON(checkout.View())
}

// HandleSubmit verifies the receipt and places the order. The request blocks
// until verification finishes; concurrent requests see the ANALYZING status.
func (h *CheckoutHandler) HandleSubmit(c *fiber.Ctx) error {
	front := middleware.Storefront(c)
	checkout, err := front.Checkout()
	if err != nil {
		return errorResponse(c, err, "No checkout in progress")
	}
	order, err := checkout.Submit(c.UserContext())
	if err != nil {
		return wizardError(c, checkout, err, "Order was not placed")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"order":    order,
		"checkout": checkout.View(),
	})
}
