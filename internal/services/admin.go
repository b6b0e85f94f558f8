package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"stylehive/internal/models"
)

const (
	defaultProductCategory = "Shirts"
	defaultProductImage    = "https://picsum.photos/400/500"
)

// AdminConsole is the capability handed to a session whose role flag is admin.
// The check happens inside the client's own state, so this is advisory access
// control only and not a security boundary.
type AdminConsole struct {
	products *ProductService
	orders   *OrderService
	now      func() time.Time
}

func (a *AdminConsole) ListProducts(ctx context.Context) ([]models.Product, error) {
	return a.products.GetAllProducts(ctx)
}

// AddProduct creates a product with a time-derived id. Category and image fall
// back to defaults when blank.
func (a *AdminConsole) AddProduct(ctx context.Context, product models.Product) (*models.Product, error) {
	product.Name = strings.TrimSpace(product.Name)
	if product.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidProduct)
	}
	if product.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidProduct)
	}
	if strings.TrimSpace(product.Category) == "" {
		product.Category = defaultProductCategory
	}
	if strings.TrimSpace(product.Image) == "" {
		product.Image = defaultProductImage
	}

	existing, err := a.products.GetAllProducts(ctx)
	if err != nil {
		return nil, err
	}
	product.ID = a.now().UnixMilli()
	for taken(existing, product.ID) {
		product.ID++
	}

	if err := a.products.CreateProduct(ctx, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func taken(products []models.Product, id int64) bool {
	for _, p := range products {
		if p.ID == id {
			return true
		}
	}
	return false
}

func (a *AdminConsole) DeleteProduct(ctx context.Context, id int64) error {
	return a.products.DeleteProduct(ctx, id)
}

func (a *AdminConsole) ListOrders(ctx context.Context) ([]models.Order, error) {
	return a.orders.ListAll(ctx)
}

func (a *AdminConsole) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) error {
	return a.orders.UpdateStatus(ctx, id, status)
}
