package usecase

import (
	"context"

	"boutique/internal/domain/entity"

	"github.com/google/uuid"
)

// AddToCartInput defines the data required to add a product to the cart.
type AddToCartInput struct {
	ProductID uuid.UUID
	Size      string
	Quantity  int
}

// CartUsecase defines the interface for shopping cart business operations.
// Every operation is scoped to the calling user.
type CartUsecase interface {
	// GetCart retrieves the user's cart lines with product display fields.
	GetCart(ctx context.Context, userID uuid.UUID) ([]*entity.CartLine, error)

	// AddToCart adds a published product to the cart, merging quantities
	// when the same product and size is already there.
	AddToCart(ctx context.Context, userID uuid.UUID, input AddToCartInput) error

	// UpdateQuantity sets a cart line's quantity. Zero or negative removes
	// the line.
	UpdateQuantity(ctx context.Context, userID, cartID uuid.UUID, quantity int) error

	// RemoveItem deletes a cart line.
	RemoveItem(ctx context.Context, userID, cartID uuid.UUID) error
}
