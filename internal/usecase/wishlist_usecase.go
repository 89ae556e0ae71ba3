package usecase

import (
	"context"

	"boutique/internal/domain/entity"

	"github.com/google/uuid"
)

// WishlistUsecase defines the interface for wishlist business operations.
type WishlistUsecase interface {
	// GetWishlist retrieves the user's saved products, newest first.
	GetWishlist(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistItem, error)

	// AddToWishlist saves a product. Saving an already-saved product is a
	// no-op success.
	AddToWishlist(ctx context.Context, userID, productID uuid.UUID) error

	// RemoveFromWishlist removes the user's entry for the product.
	RemoveFromWishlist(ctx context.Context, userID, productID uuid.UUID) error
}
