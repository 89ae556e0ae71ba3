// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CartItem represents one line of a user's cart: a product in a specific
// size. The (UserID, ProductID, Size) triple is unique; adding the same
// product and size again increments the quantity instead of creating a
// second row.
type CartItem struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the cart line.
	UserID    uuid.UUID `json:"user_id"`    // The ID of the user who owns the cart line.
	ProductID uuid.UUID `json:"product_id"` // The ID of the product in the cart.
	Size      string    `json:"size"`       // Selected size.
	Quantity  int       `json:"quantity"`   // Number of units, always >= 1 for a stored row.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when the line was first added.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last quantity change.
}

// CartLine is a cart item joined with the product fields the storefront
// renders next to it.
type CartLine struct {
	CartItem
	ProductName  string `json:"product_name"`
	PriceCents   int64  `json:"price_cents"`
	Category     string `json:"category"`
	ProductImage string `json:"product_image"` // First image of the product, empty when none.
}
