package repositories

import (
	"context"
	"fmt"

	"stylehive/internal/storage"
)

// WishlistRepository stores the ids of wished-for products.
type WishlistRepository interface {
	GetIDs(ctx context.Context) ([]int64, error)
	SetIDs(ctx context.Context, ids []int64) error
}

type StoreWishlistRepository struct {
	store storage.Store
}

func NewStoreWishlistRepository(store storage.Store) *StoreWishlistRepository {
	return &StoreWishlistRepository{store: store}
}

func (r *StoreWishlistRepository) GetIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	if _, err := loadDocument(ctx, r.store, storage.KeyWishlist, &ids); err != nil {
		return nil, fmt.Errorf("failed to get wishlist: %w", err)
	}
	return ids, nil
}

func (r *StoreWishlistRepository) SetIDs(ctx context.Context, ids []int64) error {
	if ids == nil {
		ids = []int64{}
	}
	return saveDocument(ctx, r.store, storage.KeyWishlist, ids)
}
