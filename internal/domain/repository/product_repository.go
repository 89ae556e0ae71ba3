// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"boutique/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductFilter narrows a product listing. Zero values mean "no filter";
// a nil IsDraft defaults to published-only.
type ProductFilter struct {
	Category string
	Search   string // case-insensitive substring over name and description
	IsDraft  *bool
	Limit    int
}

// ProductRepository defines the standard operations for product persistence.
// The application layer will depend on this interface, not the concrete implementation.
type ProductRepository interface {
	// FindByID retrieves a single product with its images and stock entries.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// Find retrieves products matching the filter, newest first.
	Find(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	// Create persists a new product together with its images and stock entries.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies the product's mutable fields and replaces its image list.
	Update(ctx context.Context, product *entity.Product) error

	// ReplaceStock deletes all stock entries of the product and inserts the
	// given set. Callers that need the swap to be atomic run it inside a
	// transaction via the TransactionManager.
	ReplaceStock(ctx context.Context, productID uuid.UUID, stock []*entity.ProductStock) error

	// SetPublished clears or sets the draft flag.
	SetPublished(ctx context.Context, id uuid.UUID, published bool) error

	// Delete removes the product and its dependent rows.
	Delete(ctx context.Context, id uuid.UUID) error
}
