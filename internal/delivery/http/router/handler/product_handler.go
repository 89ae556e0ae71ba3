// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"time"

	"boutique/internal/delivery/http/response"
	"boutique/internal/domain/entity"
	"boutique/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for catalog-related handlers.
type ProductHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

type stockPayload struct {
	Size          string `json:"size"`
	StockQuantity int    `json:"stock_quantity"`
}

type createProductRequest struct {
	Name                 string         `json:"name"`
	Description          string         `json:"description"`
	PriceCents           int64          `json:"price_cents"`
	Category             string         `json:"category"`
	Images               []string       `json:"images"`
	MaterialCare         string         `json:"material_care"`
	SustainabilityImpact string         `json:"sustainability_impact"`
	DeliveryDays         int            `json:"delivery_days"`
	IsDraft              bool           `json:"is_draft"`
	Stock                []stockPayload `json:"stock"`
}

// updateProductRequest carries a pointer Stock so a request that omits the
// field leaves the stored stock untouched while an empty array clears it.
type updateProductRequest struct {
	Name                 string          `json:"name"`
	Description          string          `json:"description"`
	PriceCents           int64           `json:"price_cents"`
	Category             string          `json:"category"`
	Images               []string        `json:"images"`
	MaterialCare         string          `json:"material_care"`
	SustainabilityImpact string          `json:"sustainability_impact"`
	DeliveryDays         int             `json:"delivery_days"`
	Stock                *[]stockPayload `json:"stock"`
}

type productResponse struct {
	ID                   uuid.UUID      `json:"id"`
	Name                 string         `json:"name"`
	Description          string         `json:"description"`
	PriceCents           int64          `json:"price_cents"`
	Category             string         `json:"category"`
	Images               []string       `json:"images"`
	MaterialCare         string         `json:"material_care"`
	SustainabilityImpact string         `json:"sustainability_impact"`
	DeliveryDays         int            `json:"delivery_days"`
	IsDraft              bool           `json:"is_draft"`
	Stock                []stockPayload `json:"stock"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
}

func toProductResponse(product *entity.Product) *productResponse {
	stock := make([]stockPayload, 0, len(product.Stock))
	for _, entry := range product.Stock {
		stock = append(stock, stockPayload{
			Size:          entry.Size,
			StockQuantity: entry.StockQuantity,
		})
	}

	return &productResponse{
		ID:                   product.ID,
		Name:                 product.Name,
		Description:          product.Description,
		PriceCents:           product.PriceCents,
		Category:             product.Category,
		Images:               product.Images,
		MaterialCare:         product.MaterialCare,
		SustainabilityImpact: product.SustainabilityImpact,
		DeliveryDays:         product.DeliveryDays,
		IsDraft:              product.IsDraft,
		Stock:                stock,
		CreatedAt:            product.CreatedAt,
		UpdatedAt:            product.UpdatedAt,
	}
}

func toProductResponses(products []*entity.Product) []*productResponse {
	out := make([]*productResponse, 0, len(products))
	for _, product := range products {
		out = append(out, toProductResponse(product))
	}

	return out
}

func toStockInputs(payloads []stockPayload) []usecase.StockInput {
	stock := make([]usecase.StockInput, 0, len(payloads))
	for _, entry := range payloads {
		stock = append(stock, usecase.StockInput{
			Size:          entry.Size,
			StockQuantity: entry.StockQuantity,
		})
	}

	return stock
}

// List handles the public product listing. The is_draft filter is reserved
// for admins; anonymous callers always see published products only.
func (h *ProductHandler) List(c echo.Context) error {
	input := usecase.ListProductsInput{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
	}

	if limitParam := c.QueryParam("limit"); limitParam != "" {
		limit, err := strconv.Atoi(limitParam)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "limit must be an integer")
		}
		input.Limit = limit
	}

	if draftParam := c.QueryParam("is_draft"); draftParam != "" {
		roles, _ := c.Get("roles").([]string)
		if !slices.Contains(roles, string(entity.RoleAdmin)) {
			return response.Forbidden(c, "PERMISSION_DENIED", "Draft listing requires the admin role")
		}

		isDraft, err := strconv.ParseBool(draftParam)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "is_draft must be a boolean")
		}
		input.IsDraft = &isDraft
	}

	products, err := h.uc.ListProducts(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponses(products), "Products retrieved successfully")
}

// Get handles the public product detail request.
func (h *ProductHandler) Get(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	product, err := h.uc.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product), "Product retrieved successfully")
}

// Create handles the admin product creation request.
func (h *ProductHandler) Create(c echo.Context) error {
	var input *createProductRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), usecase.CreateProductInput{
		Name:                 input.Name,
		Description:          input.Description,
		PriceCents:           input.PriceCents,
		Category:             input.Category,
		Images:               input.Images,
		MaterialCare:         input.MaterialCare,
		SustainabilityImpact: input.SustainabilityImpact,
		DeliveryDays:         input.DeliveryDays,
		IsDraft:              input.IsDraft,
		Stock:                toStockInputs(input.Stock),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProductResponse(product), "Product created successfully")
}

// Update handles the admin product update request.
func (h *ProductHandler) Update(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	var input *updateProductRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	updateInput := usecase.UpdateProductInput{
		Name:                 input.Name,
		Description:          input.Description,
		PriceCents:           input.PriceCents,
		Category:             input.Category,
		Images:               input.Images,
		MaterialCare:         input.MaterialCare,
		SustainabilityImpact: input.SustainabilityImpact,
		DeliveryDays:         input.DeliveryDays,
	}
	if input.Stock != nil {
		updateInput.Stock = toStockInputs(*input.Stock)
		updateInput.HasStock = true
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), productID, updateInput)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product), "Product updated successfully")
}

// Publish handles the admin request that takes a draft live.
func (h *ProductHandler) Publish(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	product, err := h.uc.PublishProduct(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product), "Product published successfully")
}

// Delete handles the admin product deletion request.
func (h *ProductHandler) Delete(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Product deleted"}, "Product deleted successfully")
}

// QRCode renders the product's QR code PNG for print material.
func (h *ProductHandler) QRCode(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	png, err := h.uc.GenerateProductQR(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
