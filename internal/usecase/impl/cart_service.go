package impl

import (
	"context"
	"log/slog"

	deliverycontext "boutique/internal/delivery/context"
	"boutique/internal/domain/entity"
	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/domain/repository"
	"boutique/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService creates a new cart service instance
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

// GetCart retrieves the user's cart lines. A user with no cart rows gets an
// empty list, not an error.
func (s *cartService) GetCart(ctx context.Context, userID uuid.UUID) ([]*entity.CartLine, error) {
	lines, err := s.cartRepo.FindLinesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get cart")
	}

	return lines, nil
}

// AddToCart adds a published product to the cart. Adding the same product
// and size again merges into the existing line via an atomic increment.
func (s *cartService) AddToCart(ctx context.Context, userID uuid.UUID, input usecase.AddToCartInput) error {
	if input.Quantity <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("quantity must be positive")
	}

	product, err := s.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return err
	}

	// Drafts are not purchasable even when the ID is known.
	if product.IsDraft {
		return domainerrors.ErrProductNotPurchasable
	}

	item := &entity.CartItem{
		UserID:    userID,
		ProductID: input.ProductID,
		Size:      input.Size,
		Quantity:  input.Quantity,
	}

	if err := s.cartRepo.AddOrIncrement(ctx, item); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return err
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Cart item added",
		slog.String("user_id", userID.String()),
		slog.String("product_id", input.ProductID.String()),
		slog.Int("quantity", input.Quantity),
	)

	return nil
}

// UpdateQuantity sets a cart line's quantity. Driving the quantity to zero
// or below removes the line instead of storing a nonsensical row.
func (s *cartService) UpdateQuantity(ctx context.Context, userID, cartID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(ctx, userID, cartID)
	}

	if err := s.cartRepo.UpdateQuantity(ctx, userID, cartID, quantity); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return domainerrors.ErrCartItemNotFound
		}

		return err
	}

	return nil
}

// RemoveItem deletes the user's cart line.
func (s *cartService) RemoveItem(ctx context.Context, userID, cartID uuid.UUID) error {
	if err := s.cartRepo.Delete(ctx, userID, cartID); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return domainerrors.ErrCartItemNotFound
		}

		return err
	}

	return nil
}
