package services_test

import (
	"math/rand"
	"testing"

	"stylehive/internal/models"
	"stylehive/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id int64, price string) models.Product {
	return models.Product{ID: id, Name: "Product", Price: decimal.RequireFromString(price), Category: "Shirts"}
}

func TestCart_EmptyTotal(t *testing.T) {
	cart := services.NewCart()
	assert.Equal(t, "0.00", cart.Total().StringFixed(2))
	assert.True(t, cart.Empty())
	assert.False(t, cart.IsOpen())
}

func TestCart_AddAccumulatesQuantity(t *testing.T) {
	cart := services.NewCart()
	shirt := product(1, "29.00")

	cart.Add(shirt)
	cart.Add(shirt)
	cart.Add(product(2, "0.10"))

	items := cart.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 3, cart.Count())
	assert.Equal(t, "58.10", cart.Total().StringFixed(2))
	assert.True(t, cart.IsOpen(), "adding opens the cart panel")
}

func TestCart_UpdateQuantity(t *testing.T) {
	cart := services.NewCart()
	cart.Add(product(1, "10"))

	require.NoError(t, cart.UpdateQuantity(1, 4))
	assert.Equal(t, 4, cart.Items()[0].Quantity)

	// Non-positive quantities are rejected and never remove the line.
	assert.ErrorIs(t, cart.UpdateQuantity(1, 0), services.ErrInvalidQuantity)
	assert.ErrorIs(t, cart.UpdateQuantity(1, -2), services.ErrInvalidQuantity)
	require.Len(t, cart.Items(), 1)
	assert.Equal(t, 4, cart.Items()[0].Quantity)

	assert.ErrorIs(t, cart.UpdateQuantity(99, 1), services.ErrCartItemNotFound)
}

func TestCart_Remove(t *testing.T) {
	cart := services.NewCart()
	cart.Add(product(1, "10"))
	cart.Add(product(1, "10"))
	cart.Add(product(2, "5"))

	cart.Remove(1)
	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].ID)

	cart.Remove(42)
	assert.Len(t, cart.Items(), 1)

	cart.Clear()
	assert.True(t, cart.Empty())
}

func TestCart_ItemsIsACopy(t *testing.T) {
	cart := services.NewCart()
	cart.Add(product(1, "10"))

	items := cart.Items()
	items[0].Quantity = 100
	assert.Equal(t, 1, cart.Items()[0].Quantity)
}

func TestCart_InvariantsHoldForRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	cart := services.NewCart()
	catalog := []models.Product{product(1, "29.00"), product(2, "49.99"), product(3, "0.01"), product(4, "120")}

	for i := 0; i < 2000; i++ {
		p := catalog[rng.Intn(len(catalog))]
		switch rng.Intn(3) {
		case 0:
			cart.Add(p)
		case 1:
			cart.Remove(p.ID)
		case 2:
			_ = cart.UpdateQuantity(p.ID, rng.Intn(7)-2)
		}

		seen := make(map[int64]bool)
		expected := decimal.Zero
		for _, item := range cart.Items() {
			require.False(t, seen[item.ID], "duplicate line for product %d", item.ID)
			seen[item.ID] = true
			require.GreaterOrEqual(t, item.Quantity, 1)
			expected = expected.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
		require.True(t, expected.Equal(cart.Total()), "total %s != %s", cart.Total(), expected)
	}
}
