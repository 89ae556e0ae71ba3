// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"boutique/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// StockInput defines one size's stock level for a product.
type StockInput struct {
	Size          string
	StockQuantity int
}

// CreateProductInput defines the data required to create a product.
type CreateProductInput struct {
	Name                 string
	Description          string
	PriceCents           int64
	Category             string
	Images               []string
	MaterialCare         string
	SustainabilityImpact string
	DeliveryDays         int
	IsDraft              bool
	Stock                []StockInput
}

// UpdateProductInput defines the data required to update a product.
// A nil Stock leaves the existing stock entries untouched; an empty,
// non-nil slice clears them.
type UpdateProductInput struct {
	Name                 string
	Description          string
	PriceCents           int64
	Category             string
	Images               []string
	MaterialCare         string
	SustainabilityImpact string
	DeliveryDays         int
	Stock                []StockInput
	HasStock             bool
}

// ListProductsInput defines the catalog listing filters.
type ListProductsInput struct {
	Category string
	Search   string
	IsDraft  *bool // nil means published only; setting it is an admin concern.
	Limit    int
}

// CatalogUsecase defines the interface for product catalog business operations.
type CatalogUsecase interface {
	// CreateProduct validates and persists a new product with its stock.
	CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error)

	// UpdateProduct modifies an existing product and optionally replaces its stock.
	UpdateProduct(ctx context.Context, productID uuid.UUID, input UpdateProductInput) (*entity.Product, error)

	// PublishProduct takes a draft live. Publishing re-checks the image rule.
	PublishProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error)

	// DeleteProduct removes a product and everything hanging off it.
	DeleteProduct(ctx context.Context, productID uuid.UUID) error

	// ListProducts retrieves products matching the filters, newest first.
	ListProducts(ctx context.Context, input ListProductsInput) ([]*entity.Product, error)

	// GetProduct retrieves a single product.
	GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error)

	// GenerateProductQR renders a QR code PNG linking to the public product page.
	GenerateProductQR(ctx context.Context, productID uuid.UUID) ([]byte, error)
}
