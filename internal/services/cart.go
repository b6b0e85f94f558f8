package services

import (
	"fmt"
	"sync"

	"stylehive/internal/models"

	"github.com/shopspring/decimal"
)

// Cart is the transient per-client list of selected products.
// It holds at most one line per product id and every line has quantity >= 1.
type Cart struct {
	mu    sync.RWMutex
	items []models.CartItem
	open  bool
}

// NewCart creates an empty, closed cart.
func NewCart() *Cart {
	return &Cart{}
}

// Add increments the quantity of product, inserting it with quantity 1 when
// absent, and opens the cart panel.
func (c *Cart) Add(product models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.open = true
	for i := range c.items {
		if c.items[i].ID == product.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, models.CartItem{Product: product, Quantity: 1})
}

// Remove deletes the line for id. Unknown ids are ignored.
func (c *Cart) Remove(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity replaces the quantity of a line. A quantity <= 0 is rejected and
// leaves the cart unchanged; it never removes the line.
func (c *Cart) UpdateQuantity(id int64, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity = quantity
			return nil
		}
	}
	return fmt.Errorf("%w: %d", ErrCartItemNotFound, id)
}

// Items returns a copy of the lines in insertion order.
func (c *Cart) Items() []models.CartItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return append([]models.CartItem{}, c.items...)
}

// Total is recomputed from the lines on every call.
func (c *Cart) Total() decimal.Decimal {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return models.SumItems(c.items)
}

// Count returns the number of units in the cart.
func (c *Cart) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := 0
	for _, item := range c.items {
		n += item.Quantity
	}
	return n
}

func (c *Cart) Empty() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items) == 0
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
}

func (c *Cart) IsOpen() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.open
}

func (c *Cart) OpenPanel() {
	c.mu.Lock()
	c.open = true
	c.mu.Unlock()
}

func (c *Cart) ClosePanel() {
	c.mu.Lock()
	c.open = false
	c.mu.Unlock()
}
