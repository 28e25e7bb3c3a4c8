package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Product represents a catalog item
type Product struct {
	ID          string  `json:"id" dynamodbav:"id" validate:"required,uuid"`
	Title       string  `json:"title" dynamodbav:"title" validate:"required,min=1,max=255"`
	Description string  `json:"description,omitempty" dynamodbav:"description"`
	Image       string  `json:"image,omitempty" dynamodbav:"image"`
	Price       float64 `json:"price" dynamodbav:"price" validate:"required,gt=0"`
}

// NewProduct creates a new product with a generated ID.
// The ID is minted exactly once here and is immutable afterwards.
func NewProduct(title, description, image string, price float64) *Product {
	return &Product{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Image:       image,
		Price:       price,
	}
}

// Validate validates the product data
func (p *Product) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("product ID is required")
	}

	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("product title is required")
	}

	if len(p.Title) > 255 {
		return fmt.Errorf("product title cannot exceed 255 characters")
	}

	if p.Price <= 0 {
		return fmt.Errorf("price must be positive")
	}

	return nil
}
