package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderVerified  OrderStatus = "Verified"
	OrderShipped   OrderStatus = "Shipped"
	OrderCancelled OrderStatus = "Cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderVerified, OrderShipped, OrderCancelled:
		return true
	}
	return false
}

// Order represents a completed checkout.
// Items and Total are frozen at creation; only Status changes afterwards.
type Order struct {
	ID             string           `json:"id"`
	Date           time.Time        `json:"date"`
	UserEmail      string           `json:"userEmail,omitempty"`
	Items          []CartItem       `json:"items"`
	Total          decimal.Decimal  `json:"total"`
	Status         OrderStatus      `json:"status"`
	ReceiptSummary string           `json:"receiptSummary,omitempty"`
	ShippingMethod string           `json:"shippingMethod,omitempty"`
	ShippingCost   *decimal.Decimal `json:"shippingCost,omitempty"` // nil on records written before shipping existed
}

// HasShippingInfo reports whether the order carries shipping fields.
func (o Order) HasShippingInfo() bool {
	return o.ShippingCost != nil
}

// ShippingCostOrZero returns the shipping cost, defaulting legacy orders to zero.
func (o Order) ShippingCostOrZero() decimal.Decimal {
	if o.ShippingCost == nil {
		return decimal.Zero
	}
	return *o.ShippingCost
}

// Subtotal is the item portion of the total.
func (o Order) Subtotal() decimal.Decimal {
	return o.Total.Sub(o.ShippingCostOrZero())
}
