package impl

import (
	"context"
	"testing"

	"boutique/internal/domain/entity"
	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/domain/repository"
	mockRepo "boutique/internal/mocks/repository"
	"boutique/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// wishlistServiceFixtures holds all test dependencies for wishlist service tests.
type wishlistServiceFixtures struct {
	service      usecase.WishlistUsecase
	wishlistRepo *mockRepo.MockWishlistRepository
	productRepo  *mockRepo.MockProductRepository
}

func createTestWishlistService(t *testing.T) wishlistServiceFixtures {
	wishlistRepo := mockRepo.NewMockWishlistRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	svc := NewWishlistService(WishlistServiceParams{
		WishlistRepo: wishlistRepo,
		ProductRepo:  productRepo,
		Logger:       newDiscardLogger(),
	})

	return wishlistServiceFixtures{
		service:      svc,
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

func TestWishlistService_GetWishlist(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	userID := uuid.New()
	items := []*entity.WishlistItem{
		{UserID: userID, ProductID: uuid.New()},
	}

	fx.wishlistRepo.EXPECT().FindByUser(ctx, userID).Return(items, nil)

	got, err := fx.service.GetWishlist(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestWishlistService_AddToWishlist_Success(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID}, nil)
	fx.wishlistRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(item *entity.WishlistItem) bool {
			return item.UserID == userID && item.ProductID == productID
		})).
		Return(nil)

	err := fx.service.AddToWishlist(ctx, userID, productID)

	assert.NoError(t, err)
}

func TestWishlistService_AddToWishlist_DuplicateIsNoop(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID}, nil)
	fx.wishlistRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.WishlistItem")).
		Return(repository.ErrDuplicateWishlistItem)

	err := fx.service.AddToWishlist(ctx, userID, productID)

	// Saving the same product twice is success, not a conflict.
	assert.NoError(t, err)
}

func TestWishlistService_AddToWishlist_UnknownProduct(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	err := fx.service.AddToWishlist(ctx, uuid.New(), productID)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestWishlistService_RemoveFromWishlist(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	fx.wishlistRepo.EXPECT().DeleteByProduct(ctx, userID, productID).Return(nil)

	err := fx.service.RemoveFromWishlist(ctx, userID, productID)

	assert.NoError(t, err)
}

func TestWishlistService_RemoveFromWishlist_NotFound(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	fx.wishlistRepo.EXPECT().
		DeleteByProduct(ctx, userID, productID).
		Return(repository.ErrWishlistItemNotFound)

	err := fx.service.RemoveFromWishlist(ctx, userID, productID)

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
