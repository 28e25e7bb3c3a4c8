package repositories

import (
	"context"

	"shop-catalog-api/internal/models"
)

// ProductRepository defines operations on the catalog item table
type ProductRepository interface {
	// Create stores a new product
	Create(ctx context.Context, product *models.Product) error

	// GetByID retrieves a product by its ID
	GetByID(ctx context.Context, id string) (*models.Product, error)

	// List returns all products
	List(ctx context.Context) ([]models.Product, error)
}

// StockRepository defines operations on the inventory count table
type StockRepository interface {
	// Create stores a new stock record
	Create(ctx context.Context, stock *models.Stock) error

	// GetByProductID retrieves the stock record paired with a product
	GetByProductID(ctx context.Context, productID string) (*models.Stock, error)

	// List returns all stock records
	List(ctx context.Context) ([]models.Stock, error)
}

// CatalogWriter persists a product and its paired stock record atomically.
// Either both records are written or neither is; the pair is never split.
type CatalogWriter interface {
	CreatePair(ctx context.Context, product *models.Product, stock *models.Stock) error
}

// RepositoryContainer bundles the repository set handed to the service layer
type RepositoryContainer struct {
	ProductRepo   ProductRepository
	StockRepo     StockRepository
	CatalogWriter CatalogWriter
}
