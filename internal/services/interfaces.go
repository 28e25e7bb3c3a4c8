package services

import (
	"context"
	"errors"
	"time"

	"shop-catalog-api/internal/models"
	"shop-catalog-api/internal/repositories"
	"shop-catalog-api/internal/storage"
)

// ErrBadRequest marks malformed caller input. Handlers map it to a 400.
var ErrBadRequest = errors.New("bad request")

// CreateProductRequest represents the data needed to create a product
type CreateProductRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=255"`
	Description string  `json:"description,omitempty"`
	Image       string  `json:"image,omitempty"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Count       int     `json:"count" validate:"gte=0"`
}

// UploadTarget is a time-boxed presigned upload destination
type UploadTarget struct {
	URL    string        `json:"url"`
	Expiry time.Duration `json:"-"`
}

// ProductService defines the catalog operations exposed over the API
type ProductService interface {
	// ListProducts returns all catalog items joined with their stock counts
	ListProducts(ctx context.Context) ([]models.ProductWithStock, error)

	// GetProduct returns one catalog item joined with its stock count
	GetProduct(ctx context.Context, id string) (*models.ProductWithStock, error)

	// CreateProduct creates a product and its paired stock atomically
	CreateProduct(ctx context.Context, req *CreateProductRequest) (*models.ProductWithStock, error)
}

// ImportService defines the upload half of the CSV import flow
type ImportService interface {
	// IssueUploadURL returns a presigned write URL under the upload prefix.
	// The object is not created until the client performs the upload.
	IssueUploadURL(ctx context.Context, fileName string) (*UploadTarget, error)
}

// ServiceConfig holds configuration shared by the service layer
type ServiceConfig struct {
	UploadPrefix  string
	PresignExpiry time.Duration
}

// ServiceContainer bundles all services for dependency injection
type ServiceContainer struct {
	ProductService ProductService
	ImportService  ImportService
}

// NewServiceContainer creates all services over the given dependencies
func NewServiceContainer(repos *repositories.RepositoryContainer, store storage.ObjectStorage, cfg *ServiceConfig) *ServiceContainer {
	return &ServiceContainer{
		ProductService: NewProductService(repos.ProductRepo, repos.StockRepo, repos.CatalogWriter),
		ImportService:  NewImportService(store, cfg.UploadPrefix, cfg.PresignExpiry),
	}
}
