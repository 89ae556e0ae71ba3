// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is the central catalog entity of the storefront. A product starts
// its life as a draft and becomes publicly visible once published; publishing
// is one-way, there is no unpublish operation.
type Product struct {
	ID                   uuid.UUID       // The Global Unique Identifier (GUID) for the product.
	Name                 string          // Display name shown in listings and detail pages.
	Description          string          // Long-form description, searched together with the name.
	PriceCents           int64           // Price in the smallest currency unit.
	Category             string          // Category slug used for exact-match filtering.
	Images               []string        // Ordered image URLs. Published products carry between MinPublishedImages and MaxPublishedImages.
	MaterialCare         string          // Material and care instructions copy.
	SustainabilityImpact string          // Sustainability impact copy.
	DeliveryDays         int             // Estimated delivery time in days.
	IsDraft              bool            // Draft products are excluded from public listings.
	Stock                []*ProductStock // Per-size stock entries. Replaced wholesale on update, never patched.
	CreatedAt            time.Time       // Timestamp of when this product was created.
	UpdatedAt            time.Time       // Timestamp of the last modification.
}

// ProductStock holds the available quantity of a product in one size.
type ProductStock struct {
	ProductID     uuid.UUID // Foreign Key that links this entry to a Product.
	Size          string    // Size label, e.g. "S", "M", "L" or "One Size".
	StockQuantity int       // Units available in this size.
}

// Image count bounds for published products. Drafts may be saved with any
// number of images, including none.
const (
	MinPublishedImages = 4
	MaxPublishedImages = 5
)

// HasValidImageCount reports whether the product satisfies the published
// image-count rule.
func (p *Product) HasValidImageCount() bool {
	return len(p.Images) >= MinPublishedImages && len(p.Images) <= MaxPublishedImages
}
