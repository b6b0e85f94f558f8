package models

import "github.com/shopspring/decimal"

// CartItem is a product snapshot plus the selected quantity.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// LineTotal returns price × quantity.
func (i CartItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// SumItems returns the exact sum of every line total.
func SumItems(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return total
}
