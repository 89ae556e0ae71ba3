package repository

import (
	"context"
	"errors"

	"boutique/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCartItemNotFound is a domain-specific error returned when a cart line is not found.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository defines the standard operations for cart persistence.
type CartRepository interface {
	// FindLinesByUser retrieves the user's cart lines joined with product
	// display fields, newest first.
	FindLinesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartLine, error)

	// AddOrIncrement inserts the cart line, or atomically adds its quantity
	// to the existing (user, product, size) row. The increment happens in a
	// single statement so concurrent adds cannot lose updates.
	AddOrIncrement(ctx context.Context, item *entity.CartItem) error

	// UpdateQuantity sets the stored quantity of the user's cart line.
	UpdateQuantity(ctx context.Context, userID, cartID uuid.UUID, quantity int) error

	// Delete removes the user's cart line.
	Delete(ctx context.Context, userID, cartID uuid.UUID) error
}
