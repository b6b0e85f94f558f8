package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ShippingOption is one of the fixed delivery choices offered at checkout.
type ShippingOption struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Price   decimal.Decimal `json:"price"`
	MinDays int             `json:"min_days"`
	MaxDays int             `json:"max_days"`
}

// Duration renders the delivery window, e.g. "5-7 business days".
func (o ShippingOption) Duration() string {
	return fmt.Sprintf("%d-%d business days", o.MinDays, o.MaxDays)
}

// ShippingOptions returns the fixed set of shipping options. The first one is the default.
func ShippingOptions() []ShippingOption {
	return []ShippingOption{
		{ID: "standard", Name: "Standard Shipping", Price: decimal.RequireFromString("5.99"), MinDays: 5, MaxDays: 7},
		{ID: "express", Name: "Express Shipping", Price: decimal.RequireFromString("14.99"), MinDays: 1, MaxDays: 2},
	}
}

// FindShippingOption looks an option up by id.
func FindShippingOption(id string) (ShippingOption, bool) {
	for _, opt := range ShippingOptions() {
		if opt.ID == id {
			return opt, true
		}
	}
	return ShippingOption{}, false
}
