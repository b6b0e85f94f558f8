package repositories

import (
	"context"
	"fmt"

	"stylehive/internal/models"
	"stylehive/internal/storage"
)

// StoreProductRepository keeps the catalog as a single JSON list.
type StoreProductRepository struct {
	store storage.Store
	seed  []models.Product
}

// NewStoreProductRepository creates a catalog repository. seed is written the
// first time the catalog is read and the key is absent.
func NewStoreProductRepository(store storage.Store, seed []models.Product) *StoreProductRepository {
	return &StoreProductRepository{
		store: store,
		seed:  seed,
	}
}

// GetAll returns the catalog, seeding it on first use.
func (r *StoreProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	found, err := loadDocument(ctx, r.store, storage.KeyProducts, &products)
	if err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	if !found {
		products = append([]models.Product(nil), r.seed...)
		if err := saveDocument(ctx, r.store, storage.KeyProducts, products); err != nil {
			return nil, fmt.Errorf("failed to seed products: %w", err)
		}
	}
	return products, nil
}

// GetByID returns a single product.
func (r *StoreProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	products, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrProductNotFound, id)
}

// Create appends a product to the catalog.
func (r *StoreProductRepository) Create(ctx context.Context, product *models.Product) error {
	products, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	products = append(products, *product)
	if err := saveDocument(ctx, r.store, storage.KeyProducts, products); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Delete removes a product by its id.
func (r *StoreProductRepository) Delete(ctx context.Context, id int64) error {
	products, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(products) {
		return fmt.Errorf("%w: %d", ErrProductNotFound, id)
	}
	if err := saveDocument(ctx, r.store, storage.KeyProducts, kept); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}
