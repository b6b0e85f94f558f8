package models

import "github.com/shopspring/decimal"

func init() {
	// Prices travel as JSON numbers so records written by older clients still decode.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product represents a product in the store.
type Product struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name" validate:"required,min=1,max=100"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category" validate:"omitempty,max=50"`
	Image    string          `json:"image" validate:"omitempty,url"`
}
