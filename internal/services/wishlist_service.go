package services

import (
	"context"
	"errors"

	"stylehive/internal/models"
	"stylehive/internal/repositories"
)

// WishlistService keeps the ids of products a shopper saved for later.
type WishlistService struct {
	repo     repositories.WishlistRepository
	products *ProductService
}

func NewWishlistService(repo repositories.WishlistRepository, products *ProductService) *WishlistService {
	return &WishlistService{repo: repo, products: products}
}

// Toggle adds the product when absent and removes it when present.
// It reports whether the product is wished for afterwards.
func (s *WishlistService) Toggle(ctx context.Context, productID int64) (bool, error) {
	ids, err := s.repo.GetIDs(ctx)
	if err != nil {
		return false, err
	}
	for i, id := range ids {
		if id == productID {
			ids = append(ids[:i], ids[i+1:]...)
			return false, s.repo.SetIDs(ctx, ids)
		}
	}
	if _, err := s.products.GetProductByID(ctx, productID); err != nil {
		return false, err
	}
	return true, s.repo.SetIDs(ctx, append(ids, productID))
}

func (s *WishlistService) IDs(ctx context.Context) ([]int64, error) {
	return s.repo.GetIDs(ctx)
}

// Products resolves the wishlist against the catalog, skipping ids that no longer exist.
func (s *WishlistService) Products(ctx context.Context) ([]models.Product, error) {
	ids, err := s.repo.GetIDs(ctx)
	if err != nil {
		return nil, err
	}
	products := []models.Product{}
	for _, id := range ids {
		p, err := s.products.GetProductByID(ctx, id)
		if errors.Is(err, repositories.ErrProductNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, nil
}
