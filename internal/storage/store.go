// Package storage is the client-local key/value port that replaces browser local
// storage. Values are JSON text; there is no schema versioning.
package storage

import (
	"context"
	"errors"
	"fmt"
)

// Keys used by the storefront inside a client namespace.
const (
	KeyProducts = "stylehive_products"
	KeyOrders   = "stylehive_orders"
	KeyUsers    = "stylehive_users"
	KeySession  = "stylehive_user"
	KeyWishlist = "stylehive_wishlist"
)

// ErrUnknownDriver is returned by Open for an unsupported driver name.
var ErrUnknownDriver = errors.New("unknown storage driver")

// Store is a key/value store of JSON documents.
type Store interface {
	// Get returns the value stored under key. found is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type scoped struct {
	store  Store
	prefix string
}

// Scope returns a view of store whose keys live under the given client's namespace.
func Scope(store Store, clientID string) Store {
	return &scoped{store: store, prefix: fmt.Sprintf("client:%s:", clientID)}
}

func (s *scoped) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return s.store.Get(ctx, s.prefix+key)
}

func (s *scoped) Set(ctx context.Context, key string, value []byte) error {
	return s.store.Set(ctx, s.prefix+key, value)
}

func (s *scoped) Delete(ctx context.Context, key string) error {
	return s.store.Delete(ctx, s.prefix+key)
}
