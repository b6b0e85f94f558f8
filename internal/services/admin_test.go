package services_test

import (
	"context"
	"testing"

	"stylehive/internal/models"
	"stylehive/internal/repositories"
	"stylehive/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorefront_AdminRequiresAdminSession(t *testing.T) {
	ctx := context.Background()
	front := newStorefront(t, new(MockVerifier), new(MockNotifier))

	_, err := front.Admin(ctx)
	assert.ErrorIs(t, err, services.ErrAdminRequired, "guest")

	_, err = front.Auth.Register(ctx, "Ana", "ana@example.com", "pw")
	require.NoError(t, err)
	_, err = front.Admin(ctx)
	assert.ErrorIs(t, err, services.ErrAdminRequired, "customer")

	require.NoError(t, front.Auth.Logout(ctx))
	_, err = front.Auth.Login(ctx, services.DefaultAdminCredential.Email, services.DefaultAdminCredential.Password)
	require.NoError(t, err)
	_, err = front.Admin(ctx)
	assert.NoError(t, err)
}

func adminConsole(t *testing.T, front *services.Storefront) *services.AdminConsole {
	t.Helper()
	ctx := context.Background()
	_, err := front.Auth.Login(ctx, services.DefaultAdminCredential.Email, services.DefaultAdminCredential.Password)
	require.NoError(t, err)
	console, err := front.Admin(ctx)
	require.NoError(t, err)
	return console
}

func TestAdminConsole_AddProduct(t *testing.T) {
	ctx := context.Background()
	front := newStorefront(t, new(MockVerifier), new(MockNotifier))
	console := adminConsole(t, front)

	created, err := console.AddProduct(ctx, models.Product{Name: "  Linen Shirt ", Price: decimal.RequireFromString("39.50")})
	require.NoError(t, err)
	assert.Equal(t, fixedNow.UnixMilli(), created.ID)
	assert.Equal(t, "Linen Shirt", created.Name)
	assert.Equal(t, "Shirts", created.Category)
	assert.Equal(t, "https://picsum.photos/400/500", created.Image)

	// Same clock tick: the id moves past the taken one.
	second, err := console.AddProduct(ctx, models.Product{Name: "Wool Scarf", Price: decimal.NewFromInt(20), Category: "Accessories"})
	require.NoError(t, err)
	assert.Equal(t, fixedNow.UnixMilli()+1, second.ID)
	assert.Equal(t, "Accessories", second.Category)

	products, err := console.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, len(repositories.SeedProducts())+2)

	found, err := front.Products.GetProductByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, found.Price.Equal(decimal.RequireFromString("39.5")))

	_, err = console.AddProduct(ctx, models.Product{Name: " ", Price: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, services.ErrInvalidProduct)
	_, err = console.AddProduct(ctx, models.Product{Name: "Refund", Price: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, services.ErrInvalidProduct)
}

func TestAdminConsole_DeleteProduct(t *testing.T) {
	ctx := context.Background()
	front := newStorefront(t, new(MockVerifier), new(MockNotifier))
	console := adminConsole(t, front)

	require.NoError(t, console.DeleteProduct(ctx, 3))
	_, err := front.Products.GetProductByID(ctx, 3)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)

	err = console.DeleteProduct(ctx, 3)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
}

func TestAdminConsole_UpdateOrderStatus(t *testing.T) {
	ctx := context.Background()
	front := newStorefront(t, new(MockVerifier), new(MockNotifier))
	console := adminConsole(t, front)

	require.NoError(t, front.Orders.Append(ctx, &models.Order{
		ID:     "100",
		Date:   fixedNow,
		Items:  []models.CartItem{{Product: models.Product{ID: 1, Name: "Plain White Shirt", Price: decimal.NewFromInt(29)}, Quantity: 1}},
		Total:  decimal.NewFromInt(29),
		Status: models.OrderVerified,
	}))

	require.NoError(t, console.UpdateOrderStatus(ctx, "100", models.OrderShipped))
	require.NoError(t, console.UpdateOrderStatus(ctx, "missing", models.OrderCancelled))
	assert.ErrorIs(t, console.UpdateOrderStatus(ctx, "100", "Lost"), services.ErrInvalidOrderStatus)

	orders, err := console.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, models.OrderShipped, orders[0].Status)
	assert.Equal(t, "29", orders[0].Total.String())
}
