package models

import "fmt"

// Stock represents the inventory count paired 1:1 with a catalog item
type Stock struct {
	ProductID string `json:"product_id" dynamodbav:"product_id" validate:"required,uuid"`
	Count     int    `json:"count" dynamodbav:"count" validate:"gte=0"`
}

// NewStock creates the stock record paired with the given product
func NewStock(productID string, count int) *Stock {
	return &Stock{
		ProductID: productID,
		Count:     count,
	}
}

// Validate validates the stock data
func (s *Stock) Validate() error {
	if s.ProductID == "" {
		return fmt.Errorf("stock product ID is required")
	}

	if s.Count < 0 {
		return fmt.Errorf("stock count cannot be negative")
	}

	return nil
}

// ProductWithStock is the joined read shape returned by list and get
// operations: catalog item fields plus the paired inventory count.
type ProductWithStock struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Image       string  `json:"image,omitempty"`
	Price       float64 `json:"price"`
	Count       int     `json:"count"`
}

// JoinStock combines a product with its stock record
func JoinStock(p *Product, s *Stock) *ProductWithStock {
	joined := &ProductWithStock{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Image:       p.Image,
		Price:       p.Price,
	}
	if s != nil {
		joined.Count = s.Count
	}
	return joined
}
