package notify

import (
	"fmt"
	"strings"

	"stylehive/internal/models"
)

// RenderConfirmation builds the plaintext confirmation email for an order.
func RenderConfirmation(order models.Order) string {
	var b strings.Builder

	to := order.UserEmail
	if to == "" {
		to = "(guest)"
	}
	fmt.Fprintf(&b, "To: %s\n", to)
	fmt.Fprintf(&b, "Subject: Order #%s Confirmed!\n\n", order.ID)
	b.WriteString("Dear Customer,\n\n")
	b.WriteString("Thank you for shopping with Ge'ez Shirts!\n")
	b.WriteString("Your payment receipt has been verified and your order is being processed.\n\n")

	b.WriteString("--- ORDER DETAILS ---\n")
	fmt.Fprintf(&b, "Order ID: %s\n", order.ID)
	fmt.Fprintf(&b, "Date: %s\n\n", order.Date.Format("2006-01-02 15:04:05"))

	b.WriteString("--- ITEMS ---\n")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "%dx %-30s $%s\n", item.Quantity, item.Name, item.LineTotal().StringFixed(2))
	}

	if order.HasShippingInfo() {
		b.WriteString("\n--- SHIPPING ---\n")
		fmt.Fprintf(&b, "Method: %s\n", order.ShippingMethod)
		fmt.Fprintf(&b, "Cost:   $%s\n", order.ShippingCostOrZero().StringFixed(2))
	}

	b.WriteString("\n---------------------\n")
	fmt.Fprintf(&b, "TOTAL:  $%s\n", order.Total.StringFixed(2))
	b.WriteString("---------------------\n\n")
	b.WriteString("We will notify you when your items have shipped.\n\n")
	b.WriteString("Best regards,\nThe Ge'ez Shirts Team\n")
	return b.String()
}
