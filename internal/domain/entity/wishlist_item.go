// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// WishlistItem links a user to a product they saved for later. The
// (UserID, ProductID) pair is unique; saving the same product twice is a
// no-op rather than an error.
type WishlistItem struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the wishlist entry.
	UserID    uuid.UUID `json:"user_id"`    // The ID of the user who saved the product.
	ProductID uuid.UUID `json:"product_id"` // The ID of the saved product.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when the product was saved.
}
