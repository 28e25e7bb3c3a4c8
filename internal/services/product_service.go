package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"shop-catalog-api/internal/models"
	"shop-catalog-api/internal/repositories"
)

// productService implements the ProductService interface
type productService struct {
	productRepo repositories.ProductRepository
	stockRepo   repositories.StockRepository
	writer      repositories.CatalogWriter
	validator   *validator.Validate
}

// NewProductService creates a new product service instance
func NewProductService(productRepo repositories.ProductRepository, stockRepo repositories.StockRepository, writer repositories.CatalogWriter) ProductService {
	return &productService{
		productRepo: productRepo,
		stockRepo:   stockRepo,
		writer:      writer,
		validator:   validator.New(),
	}
}

// ListProducts returns all catalog items joined with their stock counts.
// The two tables are scanned in parallel and joined in memory.
func (s *productService) ListProducts(ctx context.Context) ([]models.ProductWithStock, error) {
	var (
		products []models.Product
		stocks   []models.Stock
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = s.productRepo.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		stocks, err = s.stockRepo.List(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to list catalog: %w", err)
	}

	counts := make(map[string]int, len(stocks))
	for _, stock := range stocks {
		counts[stock.ProductID] = stock.Count
	}

	joined := make([]models.ProductWithStock, 0, len(products))
	for i := range products {
		stock := models.Stock{ProductID: products[i].ID, Count: counts[products[i].ID]}
		joined = append(joined, *models.JoinStock(&products[i], &stock))
	}

	return joined, nil
}

// GetProduct returns one catalog item joined with its stock count
func (s *productService) GetProduct(ctx context.Context, id string) (*models.ProductWithStock, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: product ID cannot be empty", ErrBadRequest)
	}

	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: invalid product ID format", ErrBadRequest)
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	stock, err := s.stockRepo.GetByProductID(ctx, id)
	if err != nil {
		// A missing stock record reads as count zero, as the list join does
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
		stock = nil
	}

	return models.JoinStock(product, stock), nil
}

// CreateProduct creates a product and its paired stock record atomically
func (s *productService) CreateProduct(ctx context.Context, req *CreateProductRequest) (*models.ProductWithStock, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: create product request cannot be nil", ErrBadRequest)
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}

	product := models.NewProduct(req.Title, req.Description, req.Image, req.Price)
	stock := models.NewStock(product.ID, req.Count)

	if err := s.writer.CreatePair(ctx, product, stock); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return models.JoinStock(product, stock), nil
}
