package services_test

import (
	"context"
	"fmt"
	"testing"

	"stylehive/internal/models"
	"stylehive/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var catalogFixture = []models.Product{
	{ID: 1, Name: "Plain White Shirt", Price: decimal.NewFromInt(29), Category: "Shirts"},
	{ID: 2, Name: "Classic Cardigan", Price: decimal.NewFromInt(49), Category: "Outerwear"},
	{ID: 3, Name: "Striped Polo", Price: decimal.NewFromInt(32), Category: "Shirts"},
}

func TestProductService_GetAllProducts(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("GetAll", ctx).Return(catalogFixture, nil).Once()

	products, err := service.GetAllProducts(ctx)

	assert.NoError(t, err)
	assert.Len(t, products, 3)
	assert.Equal(t, catalogFixture, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expectedProduct := &catalogFixture[0]

	mockRepo.On("GetByID", ctx, int64(1)).Return(expectedProduct, nil).Once()
	product, err := service.GetProductByID(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, expectedProduct, product)

	mockRepo.On("GetByID", ctx, int64(99)).Return(nil, fmt.Errorf("product not found: 99")).Once()
	product, err = service.GetProductByID(ctx, 99)
	assert.Error(t, err)
	assert.Nil(t, product)
	assert.Contains(t, err.Error(), "not found")
	mockRepo.AssertExpectations(t)
}

func TestProductService_Categories(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("GetAll", ctx).Return(catalogFixture, nil)

	categories, err := service.Categories(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []string{"All", "Outerwear", "Shirts"}, categories)

	shirts, err := service.ProductsInCategory(ctx, "Shirts")
	assert.NoError(t, err)
	assert.Len(t, shirts, 2)

	all, err := service.ProductsInCategory(ctx, services.AllCategories)
	assert.NoError(t, err)
	assert.Len(t, all, 3)

	none, err := service.ProductsInCategory(ctx, "Hats")
	assert.NoError(t, err)
	assert.Empty(t, none)
}

func TestProductService_CreateProduct(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	newProduct := &models.Product{ID: 9, Name: "New Product", Price: decimal.NewFromInt(50)}

	mockRepo.On("Create", ctx, newProduct).Return(nil).Once()
	err := service.CreateProduct(ctx, newProduct)
	assert.NoError(t, err)

	mockRepo.On("Create", ctx, newProduct).Return(fmt.Errorf("storage error")).Once()
	err = service.CreateProduct(ctx, newProduct)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "storage error")
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("Delete", ctx, int64(1)).Return(nil).Once()
	err := service.DeleteProduct(ctx, 1)
	assert.NoError(t, err)

	mockRepo.On("Delete", ctx, int64(99)).Return(fmt.Errorf("product not found: 99")).Once()
	err = service.DeleteProduct(ctx, 99)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	mockRepo.AssertExpectations(t)
}
