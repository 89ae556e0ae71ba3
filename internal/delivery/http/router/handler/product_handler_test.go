package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"boutique/internal/domain/entity"
	domainerrors "boutique/internal/domain/errors"
	mockUsecase "boutique/internal/mocks/usecase"
	"boutique/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newHandlerContext(t *testing.T, method, target string, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestProductHandler_List(t *testing.T) {
	uc := mockUsecase.NewMockCatalogUsecase(t)
	h := NewProductHandler(uc, newTestLogger())

	c, rec := newHandlerContext(t, http.MethodGet, "/products?category=shirts", "")

	uc.EXPECT().
		ListProducts(c.Request().Context(), usecase.ListProductsInput{Category: "shirts"}).
		Return([]*entity.Product{{Name: "Linen Shirt", Category: "shirts"}}, nil)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Linen Shirt")
}

func TestProductHandler_List_DraftFilterRequiresAdmin(t *testing.T) {
	uc := mockUsecase.NewMockCatalogUsecase(t)
	h := NewProductHandler(uc, newTestLogger())

	c, rec := newHandlerContext(t, http.MethodGet, "/products?is_draft=true", "")

	// No admin role on the context: the filter is refused before the
	// usecase is reached.
	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestProductHandler_List_DraftFilterWithAdminRole(t *testing.T) {
	uc := mockUsecase.NewMockCatalogUsecase(t)
	h := NewProductHandler(uc, newTestLogger())

	c, rec := newHandlerContext(t, http.MethodGet, "/products?is_draft=true", "")
	c.Set("roles", []string{"user", "admin"})

	isDraft := true
	uc.EXPECT().
		ListProducts(c.Request().Context(), usecase.ListProductsInput{IsDraft: &isDraft}).
		Return([]*entity.Product{{Name: "Draft Shirt", IsDraft: true}}, nil)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Draft Shirt")
}

func TestProductHandler_Get_InvalidID(t *testing.T) {
	uc := mockUsecase.NewMockCatalogUsecase(t)
	h := NewProductHandler(uc, newTestLogger())

	c, rec := newHandlerContext(t, http.MethodGet, "/products/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductHandler_Get_NotFoundPropagates(t *testing.T) {
	uc := mockUsecase.NewMockCatalogUsecase(t)
	h := NewProductHandler(uc, newTestLogger())

	productID := uuid.New()
	c, _ := newHandlerContext(t, http.MethodGet, "/products/"+productID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(productID.String())

	uc.EXPECT().
		GetProduct(c.Request().Context(), productID).
		Return(nil, domainerrors.ErrProductNotFound)

	err := h.Get(c)

	// The error rides up to the centralized error handler.
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductHandler_Create(t *testing.T) {
	uc := mockUsecase.NewMockCatalogUsecase(t)
	h := NewProductHandler(uc, newTestLogger())

	body := `{"name":"Linen Shirt","price_cents":8900,"category":"shirts","images":["a","b","c","d"],"stock":[{"size":"M","stock_quantity":5}]}`
	c, rec := newHandlerContext(t, http.MethodPost, "/admin/products", body)

	uc.EXPECT().
		CreateProduct(c.Request().Context(), usecase.CreateProductInput{
			Name:       "Linen Shirt",
			PriceCents: 8900,
			Category:   "shirts",
			Images:     []string{"a", "b", "c", "d"},
			Stock:      []usecase.StockInput{{Size: "M", StockQuantity: 5}},
		}).
		Return(&entity.Product{
			ID:         uuid.New(),
			Name:       "Linen Shirt",
			PriceCents: 8900,
			Category:   "shirts",
			Images:     []string{"a", "b", "c", "d"},
		}, nil)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestProductHandler_Update_OmittedStockLeavesStock(t *testing.T) {
	uc := mockUsecase.NewMockCatalogUsecase(t)
	h := NewProductHandler(uc, newTestLogger())

	productID := uuid.New()
	body := `{"name":"Linen Shirt","price_cents":9900,"category":"shirts","images":["a","b","c","d"]}`
	c, rec := newHandlerContext(t, http.MethodPut, "/admin/products/"+productID.String(), body)
	c.SetParamNames("id")
	c.SetParamValues(productID.String())

	uc.EXPECT().
		UpdateProduct(c.Request().Context(), productID, usecase.UpdateProductInput{
			Name:       "Linen Shirt",
			PriceCents: 9900,
			Category:   "shirts",
			Images:     []string{"a", "b", "c", "d"},
			// HasStock stays false when the field is omitted.
		}).
		Return(&entity.Product{ID: productID, Name: "Linen Shirt"}, nil)

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProductHandler_Update_EmptyStockClearsStock(t *testing.T) {
	uc := mockUsecase.NewMockCatalogUsecase(t)
	h := NewProductHandler(uc, newTestLogger())

	productID := uuid.New()
	body := `{"name":"Linen Shirt","price_cents":9900,"category":"shirts","images":["a","b","c","d"],"stock":[]}`
	c, rec := newHandlerContext(t, http.MethodPut, "/admin/products/"+productID.String(), body)
	c.SetParamNames("id")
	c.SetParamValues(productID.String())

	uc.EXPECT().
		UpdateProduct(c.Request().Context(), productID, usecase.UpdateProductInput{
			Name:       "Linen Shirt",
			PriceCents: 9900,
			Category:   "shirts",
			Images:     []string{"a", "b", "c", "d"},
			Stock:      []usecase.StockInput{},
			HasStock:   true,
		}).
		Return(&entity.Product{ID: productID, Name: "Linen Shirt"}, nil)

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProductHandler_QRCode(t *testing.T) {
	uc := mockUsecase.NewMockCatalogUsecase(t)
	h := NewProductHandler(uc, newTestLogger())

	productID := uuid.New()
	c, rec := newHandlerContext(t, http.MethodGet, "/admin/products/"+productID.String()+"/qr", "")
	c.SetParamNames("id")
	c.SetParamValues(productID.String())

	pngMagic := []byte{0x89, 0x50, 0x4E, 0x47}
	uc.EXPECT().
		GenerateProductQR(c.Request().Context(), productID).
		Return(pngMagic, nil)

	require.NoError(t, h.QRCode(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, pngMagic, rec.Body.Bytes())
}
