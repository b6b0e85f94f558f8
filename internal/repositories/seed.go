package repositories

import (
	"fmt"

	"stylehive/internal/models"

	"github.com/shopspring/decimal"
)

// SeedProducts returns the catalog every new client starts with.
func SeedProducts() []models.Product {
	seed := []struct {
		name     string
		price    int64
		category string
	}{
		{"Plain White Shirt", 29, "Shirts"},
		{"Classic Cardigan", 49, "Outerwear"},
		{"Brown Bomber Jacket", 89, "Jackets"},
		{"Grey Sweatshirt", 35, "Hoodies"},
		{"Checkered Overshirt", 55, "Shirts"},
		{"Navy Trousers", 45, "Pants"},
		{"Beige Trench Coat", 120, "Coats"},
		{"Striped Polo", 32, "Shirts"},
	}

	products := make([]models.Product, 0, len(seed))
	for i, s := range seed {
		products = append(products, models.Product{
			ID:       int64(i + 1),
			Name:     s.name,
			Price:    decimal.NewFromInt(s.price),
			Category: s.category,
			Image:    fmt.Sprintf("https://picsum.photos/400/500?random=%d", 10+i),
		})
	}
	return products
}
