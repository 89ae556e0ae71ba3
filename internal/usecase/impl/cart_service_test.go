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

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service     usecase.CartUsecase
	cartRepo    *mockRepo.MockCartRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	svc := NewCartService(CartServiceParams{
		CartRepo:    cartRepo,
		ProductRepo: productRepo,
		Logger:      newDiscardLogger(),
	})

	return cartServiceFixtures{
		service:     svc,
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func TestCartService_GetCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	lines := []*entity.CartLine{
		{ProductName: "Linen Shirt", PriceCents: 8900},
	}

	fx.cartRepo.EXPECT().FindLinesByUser(ctx, userID).Return(lines, nil)

	got, err := fx.service.GetCart(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, lines, got)
}

func TestCartService_GetCart_EmptyCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.cartRepo.EXPECT().FindLinesByUser(ctx, userID).Return([]*entity.CartLine{}, nil)

	got, err := fx.service.GetCart(ctx, userID)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCartService_AddToCart_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	input := usecase.AddToCartInput{ProductID: productID, Size: "M", Quantity: 2}

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, IsDraft: false}, nil)
	fx.cartRepo.EXPECT().
		AddOrIncrement(ctx, mock.MatchedBy(func(item *entity.CartItem) bool {
			return item.UserID == userID &&
				item.ProductID == productID &&
				item.Size == "M" &&
				item.Quantity == 2
		})).
		Return(nil)

	err := fx.service.AddToCart(ctx, userID, input)

	assert.NoError(t, err)
}

func TestCartService_AddToCart_NonPositiveQuantity(t *testing.T) {
	fx := createTestCartService(t)

	err := fx.service.AddToCart(context.Background(), uuid.New(), usecase.AddToCartInput{
		ProductID: uuid.New(),
		Quantity:  0,
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCartService_AddToCart_UnknownProduct(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	err := fx.service.AddToCart(ctx, uuid.New(), usecase.AddToCartInput{ProductID: productID, Quantity: 1})

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_AddToCart_DraftNotPurchasable(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, IsDraft: true}, nil)

	err := fx.service.AddToCart(ctx, uuid.New(), usecase.AddToCartInput{ProductID: productID, Quantity: 1})

	assert.ErrorIs(t, err, domainerrors.ErrProductNotPurchasable)
}

func TestCartService_UpdateQuantity(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()

	fx.cartRepo.EXPECT().UpdateQuantity(ctx, userID, cartID, 3).Return(nil)

	err := fx.service.UpdateQuantity(ctx, userID, cartID, 3)

	assert.NoError(t, err)
}

func TestCartService_UpdateQuantity_ZeroRemovesLine(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()

	// Driving the quantity to zero deletes instead of updating.
	fx.cartRepo.EXPECT().Delete(ctx, userID, cartID).Return(nil)

	err := fx.service.UpdateQuantity(ctx, userID, cartID, 0)

	assert.NoError(t, err)
}

func TestCartService_UpdateQuantity_NotFound(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()

	fx.cartRepo.EXPECT().
		UpdateQuantity(ctx, userID, cartID, 2).
		Return(repository.ErrCartItemNotFound)

	err := fx.service.UpdateQuantity(ctx, userID, cartID, 2)

	assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)
}

func TestCartService_RemoveItem(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()

	fx.cartRepo.EXPECT().Delete(ctx, userID, cartID).Return(nil)

	err := fx.service.RemoveItem(ctx, userID, cartID)

	assert.NoError(t, err)
}

func TestCartService_RemoveItem_NotFound(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()

	fx.cartRepo.EXPECT().
		Delete(ctx, userID, cartID).
		Return(repository.ErrCartItemNotFound)

	err := fx.service.RemoveItem(ctx, userID, cartID)

	assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)
}
