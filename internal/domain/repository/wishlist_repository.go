package repository

import (
	"context"
	"errors"

	"boutique/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrWishlistItemNotFound is returned when a wishlist entry is not found.
var ErrWishlistItemNotFound = errors.New("wishlist item not found")

// ErrDuplicateWishlistItem is returned when the (user, product) pair already exists.
var ErrDuplicateWishlistItem = errors.New("wishlist item already exists")

// WishlistRepository defines the standard operations for wishlist persistence.
type WishlistRepository interface {
	// FindByUser retrieves the user's wishlist entries, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistItem, error)

	// Create persists a new wishlist entry. A duplicate (user, product) pair
	// yields ErrDuplicateWishlistItem.
	Create(ctx context.Context, item *entity.WishlistItem) error

	// DeleteByProduct removes the user's entry for the given product.
	DeleteByProduct(ctx context.Context, userID, productID uuid.UUID) error
}
