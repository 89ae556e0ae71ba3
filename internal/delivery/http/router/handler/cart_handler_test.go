package handler

import (
	"fmt"
	"net/http"
	"testing"

	"boutique/internal/domain/entity"
	domainerrors "boutique/internal/domain/errors"
	mockUsecase "boutique/internal/mocks/usecase"
	"boutique/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartHandler_Get(t *testing.T) {
	uc := mockUsecase.NewMockCartUsecase(t)
	h := NewCartHandler(uc, newTestLogger())

	userID := uuid.New()
	c, rec := newHandlerContext(t, http.MethodGet, "/cart", "")
	c.Set("userID", userID)

	uc.EXPECT().
		GetCart(c.Request().Context(), userID).
		Return([]*entity.CartLine{
			{
				CartItem:    entity.CartItem{ID: uuid.New(), UserID: userID, Size: "M", Quantity: 2},
				ProductName: "Linen Shirt",
				PriceCents:  8900,
			},
		}, nil)

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Linen Shirt")
}

func TestCartHandler_Get_MissingIdentity(t *testing.T) {
	uc := mockUsecase.NewMockCartUsecase(t)
	h := NewCartHandler(uc, newTestLogger())

	c, rec := newHandlerContext(t, http.MethodGet, "/cart", "")

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCartHandler_Add(t *testing.T) {
	uc := mockUsecase.NewMockCartUsecase(t)
	h := NewCartHandler(uc, newTestLogger())

	userID := uuid.New()
	productID := uuid.New()
	body := fmt.Sprintf(`{"product_id":%q,"size":"M","quantity":2}`, productID)
	c, rec := newHandlerContext(t, http.MethodPost, "/cart", body)
	c.Set("userID", userID)

	uc.EXPECT().
		AddToCart(c.Request().Context(), userID, usecase.AddToCartInput{
			ProductID: productID,
			Size:      "M",
			Quantity:  2,
		}).
		Return(nil)

	require.NoError(t, h.Add(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCartHandler_Add_DraftProductPropagates(t *testing.T) {
	uc := mockUsecase.NewMockCartUsecase(t)
	h := NewCartHandler(uc, newTestLogger())

	userID := uuid.New()
	productID := uuid.New()
	body := fmt.Sprintf(`{"product_id":%q,"size":"M","quantity":1}`, productID)
	c, _ := newHandlerContext(t, http.MethodPost, "/cart", body)
	c.Set("userID", userID)

	uc.EXPECT().
		AddToCart(c.Request().Context(), userID, usecase.AddToCartInput{
			ProductID: productID,
			Size:      "M",
			Quantity:  1,
		}).
		Return(domainerrors.ErrProductNotPurchasable)

	err := h.Add(c)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotPurchasable)
}

func TestCartHandler_UpdateQuantity(t *testing.T) {
	uc := mockUsecase.NewMockCartUsecase(t)
	h := NewCartHandler(uc, newTestLogger())

	userID := uuid.New()
	cartID := uuid.New()
	c, rec := newHandlerContext(t, http.MethodPut, "/cart/"+cartID.String(), `{"quantity":3}`)
	c.Set("userID", userID)
	c.SetParamNames("id")
	c.SetParamValues(cartID.String())

	uc.EXPECT().
		UpdateQuantity(c.Request().Context(), userID, cartID, 3).
		Return(nil)

	require.NoError(t, h.UpdateQuantity(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCartHandler_UpdateQuantity_InvalidID(t *testing.T) {
	uc := mockUsecase.NewMockCartUsecase(t)
	h := NewCartHandler(uc, newTestLogger())

	c, rec := newHandlerContext(t, http.MethodPut, "/cart/nope", `{"quantity":3}`)
	c.Set("userID", uuid.New())
	c.SetParamNames("id")
	c.SetParamValues("nope")

	require.NoError(t, h.UpdateQuantity(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartHandler_Remove(t *testing.T) {
	uc := mockUsecase.NewMockCartUsecase(t)
	h := NewCartHandler(uc, newTestLogger())

	userID := uuid.New()
	cartID := uuid.New()
	c, rec := newHandlerContext(t, http.MethodDelete, "/cart/"+cartID.String(), "")
	c.Set("userID", userID)
	c.SetParamNames("id")
	c.SetParamValues(cartID.String())

	uc.EXPECT().
		RemoveItem(c.Request().Context(), userID, cartID).
		Return(nil)

	require.NoError(t, h.Remove(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
