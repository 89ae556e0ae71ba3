package handler

import (
	"fmt"
	"net/http"
	"testing"

	"boutique/internal/domain/entity"
	domainerrors "boutique/internal/domain/errors"
	mockUsecase "boutique/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistHandler_Get(t *testing.T) {
	uc := mockUsecase.NewMockWishlistUsecase(t)
	h := NewWishlistHandler(uc, newTestLogger())

	userID := uuid.New()
	productID := uuid.New()
	c, rec := newHandlerContext(t, http.MethodGet, "/wishlist", "")
	c.Set("userID", userID)

	uc.EXPECT().
		GetWishlist(c.Request().Context(), userID).
		Return([]*entity.WishlistItem{
			{ID: uuid.New(), UserID: userID, ProductID: productID},
		}, nil)

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), productID.String())
}

func TestWishlistHandler_Add(t *testing.T) {
	uc := mockUsecase.NewMockWishlistUsecase(t)
	h := NewWishlistHandler(uc, newTestLogger())

	userID := uuid.New()
	productID := uuid.New()
	body := fmt.Sprintf(`{"product_id":%q}`, productID)
	c, rec := newHandlerContext(t, http.MethodPost, "/wishlist", body)
	c.Set("userID", userID)

	uc.EXPECT().
		AddToWishlist(c.Request().Context(), userID, productID).
		Return(nil)

	require.NoError(t, h.Add(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestWishlistHandler_Add_UnknownProductPropagates(t *testing.T) {
	uc := mockUsecase.NewMockWishlistUsecase(t)
	h := NewWishlistHandler(uc, newTestLogger())

	userID := uuid.New()
	productID := uuid.New()
	body := fmt.Sprintf(`{"product_id":%q}`, productID)
	c, _ := newHandlerContext(t, http.MethodPost, "/wishlist", body)
	c.Set("userID", userID)

	uc.EXPECT().
		AddToWishlist(c.Request().Context(), userID, productID).
		Return(domainerrors.ErrProductNotFound)

	err := h.Add(c)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestWishlistHandler_Remove(t *testing.T) {
	uc := mockUsecase.NewMockWishlistUsecase(t)
	h := NewWishlistHandler(uc, newTestLogger())

	userID := uuid.New()
	productID := uuid.New()
	c, rec := newHandlerContext(t, http.MethodDelete, "/wishlist/"+productID.String(), "")
	c.Set("userID", userID)
	c.SetParamNames("productId")
	c.SetParamValues(productID.String())

	uc.EXPECT().
		RemoveFromWishlist(c.Request().Context(), userID, productID).
		Return(nil)

	require.NoError(t, h.Remove(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWishlistHandler_Remove_InvalidID(t *testing.T) {
	uc := mockUsecase.NewMockWishlistUsecase(t)
	h := NewWishlistHandler(uc, newTestLogger())

	c, rec := newHandlerContext(t, http.MethodDelete, "/wishlist/nope", "")
	c.Set("userID", uuid.New())
	c.SetParamNames("productId")
	c.SetParamValues("nope")

	require.NoError(t, h.Remove(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
