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

type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
	logger       *slog.Logger
}

// WishlistServiceParams holds dependencies for WishlistService, injected by Fx.
type WishlistServiceParams struct {
	fx.In

	WishlistRepo repository.WishlistRepository
	ProductRepo  repository.ProductRepository
	Logger       *slog.Logger
}

// NewWishlistService creates a new wishlist service instance
func NewWishlistService(params WishlistServiceParams) usecase.WishlistUsecase {
	return &wishlistService{
		wishlistRepo: params.WishlistRepo,
		productRepo:  params.ProductRepo,
		logger:       params.Logger,
	}
}

// GetWishlist retrieves the user's saved products, newest first.
func (s *wishlistService) GetWishlist(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistItem, error) {
	items, err := s.wishlistRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get wishlist")
	}

	return items, nil
}

// AddToWishlist saves a product. Saving an already-saved product succeeds
// without creating a second row.
func (s *wishlistService) AddToWishlist(ctx context.Context, userID, productID uuid.UUID) error {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return err
	}

	item := &entity.WishlistItem{
		UserID:    userID,
		ProductID: productID,
	}

	if err := s.wishlistRepo.Create(ctx, item); err != nil {
		if errors.Is(err, repository.ErrDuplicateWishlistItem) {
			// Already saved; treat the repeat as success.
			return nil
		}
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return err
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Wishlist item added",
		slog.String("user_id", userID.String()),
		slog.String("product_id", productID.String()),
	)

	return nil
}

// RemoveFromWishlist removes the user's entry for the product.
func (s *wishlistService) RemoveFromWishlist(ctx context.Context, userID, productID uuid.UUID) error {
	if err := s.wishlistRepo.DeleteByProduct(ctx, userID, productID); err != nil {
		if errors.Is(err, repository.ErrWishlistItemNotFound) {
			return domainerrors.ErrNotFound
		}

		return err
	}

	return nil
}
