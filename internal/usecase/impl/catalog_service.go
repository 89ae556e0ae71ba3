// Package impl holds the concrete use case implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"boutique/config"
	deliverycontext "boutique/internal/delivery/context"
	"boutique/internal/domain/entity"
	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/domain/repository"
	"boutique/internal/domain/service"
	"boutique/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type catalogService struct {
	productRepo   repository.ProductRepository
	txManager     repository.TransactionManager
	qrcodeService service.QRCodeService
	publisher     service.EventPublisher
	config        *config.Config
	logger        *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo   repository.ProductRepository
	TxManager     repository.TransactionManager
	QRCodeService service.QRCodeService
	Publisher     service.EventPublisher
	Config        *config.Config
	Logger        *slog.Logger
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo:   params.ProductRepo,
		txManager:     params.TxManager,
		qrcodeService: params.QRCodeService,
		publisher:     params.Publisher,
		config:        params.Config,
		logger:        params.Logger,
	}
}

// CreateProduct validates and persists a new product with its stock entries
// in a single transaction.
func (s *catalogService) CreateProduct(ctx context.Context, input usecase.CreateProductInput) (*entity.Product, error) {
	product := productFromCreateInput(input)

	if err := s.validateProduct(product); err != nil {
		return nil, err
	}

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.ProductRepo().Create(ctx, product)
	})
	if err != nil {
		return nil, err
	}

	s.getLogger(ctx).Info("Product created",
		slog.String("product_id", product.ID.String()),
		slog.Bool("is_draft", product.IsDraft),
	)

	return product, nil
}

// UpdateProduct modifies an existing product. When the input carries stock,
// the old entries are replaced wholesale in the same transaction as the
// field update.
func (s *catalogService) UpdateProduct(ctx context.Context, productID uuid.UUID, input usecase.UpdateProductInput) (*entity.Product, error) {
	current, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, err
	}

	updated := applyUpdateInput(current, input)

	if err := s.validateProduct(updated); err != nil {
		return nil, err
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		productRepo := factory.ProductRepo()

		if err := productRepo.Update(ctx, updated); err != nil {
			return err
		}

		if input.HasStock {
			if err := productRepo.ReplaceStock(ctx, productID, updated.Stock); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, err
	}

	return s.productRepo.FindByID(ctx, productID)
}

// PublishProduct takes a draft live. The image-count rule is re-checked at
// publish time, so a draft edited below the minimum cannot slip through.
// Publishing an already-published product is a no-op.
func (s *catalogService) PublishProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, err
	}

	if !product.IsDraft {
		return product, nil
	}

	if !product.HasValidImageCount() {
		return nil, domainerrors.ErrProductImageCount
	}

	if err := s.productRepo.SetPublished(ctx, productID, true); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, err
	}

	product.IsDraft = false

	s.publishCatalogEvent(ctx, product)

	return product, nil
}

// DeleteProduct removes the product and every row that references it inside
// one transaction.
func (s *catalogService) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.ProductRepo().Delete(ctx, productID)
	})
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return err
	}

	s.getLogger(ctx).Info("Product deleted", slog.String("product_id", productID.String()))

	return nil
}

// ListProducts retrieves products matching the filters, newest first.
func (s *catalogService) ListProducts(ctx context.Context, input usecase.ListProductsInput) ([]*entity.Product, error) {
	limit := input.Limit
	if limit <= 0 && s.config.Catalog != nil {
		limit = s.config.Catalog.DefaultListLimit
	}

	products, err := s.productRepo.Find(ctx, repository.ProductFilter{
		Category: input.Category,
		Search:   strings.TrimSpace(input.Search),
		IsDraft:  input.IsDraft,
		Limit:    limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct retrieves a single product.
func (s *catalogService) GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, err
	}

	return product, nil
}

// GenerateProductQR renders a QR code PNG linking to the public product page.
func (s *catalogService) GenerateProductQR(ctx context.Context, productID uuid.UUID) ([]byte, error) {
	if _, err := s.GetProduct(ctx, productID); err != nil {
		return nil, err
	}

	qrCode, err := s.qrcodeService.GenerateProductQR(productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate product QR")
	}

	return qrCode, nil
}

// validateProduct enforces the catalog rules shared by create and update:
// required fields always, the image-count rule only on published products.
func (s *catalogService) validateProduct(product *entity.Product) error {
	if strings.TrimSpace(product.Name) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if product.PriceCents <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("price must be positive")
	}
	if strings.TrimSpace(product.Category) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("category is required")
	}
	if !product.IsDraft && !product.HasValidImageCount() {
		return domainerrors.ErrProductImageCount
	}

	return nil
}

// publishCatalogEvent emits a product.published event. A publisher failure
// is logged and swallowed: the publish itself already committed.
func (s *catalogService) publishCatalogEvent(ctx context.Context, product *entity.Product) {
	event := &service.CatalogEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		EventID:   uuid.New().String(),
		Type:      service.CatalogEventTypePublished,
		ProductID: product.ID.String(),
		Name:      product.Name,
		Category:  product.Category,
	}

	if err := s.publisher.PublishCatalogEvent(ctx, event); err != nil {
		s.getLogger(ctx).Warn("Failed to publish catalog event",
			slog.String("product_id", product.ID.String()),
			slog.Any("error", err),
		)
	}
}

func (s *catalogService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func productFromCreateInput(input usecase.CreateProductInput) *entity.Product {
	stock := make([]*entity.ProductStock, 0, len(input.Stock))
	for _, entry := range input.Stock {
		stock = append(stock, &entity.ProductStock{
			Size:          entry.Size,
			StockQuantity: entry.StockQuantity,
		})
	}

	return &entity.Product{
		Name:                 input.Name,
		Description:          input.Description,
		PriceCents:           input.PriceCents,
		Category:             input.Category,
		Images:               input.Images,
		MaterialCare:         input.MaterialCare,
		SustainabilityImpact: input.SustainabilityImpact,
		DeliveryDays:         input.DeliveryDays,
		IsDraft:              input.IsDraft,
		Stock:                stock,
	}
}

func applyUpdateInput(current *entity.Product, input usecase.UpdateProductInput) *entity.Product {
	updated := *current
	updated.Name = input.Name
	updated.Description = input.Description
	updated.PriceCents = input.PriceCents
	updated.Category = input.Category
	updated.Images = input.Images
	updated.MaterialCare = input.MaterialCare
	updated.SustainabilityImpact = input.SustainabilityImpact
	updated.DeliveryDays = input.DeliveryDays

	if input.HasStock {
		stock := make([]*entity.ProductStock, 0, len(input.Stock))
		for _, entry := range input.Stock {
			stock = append(stock, &entity.ProductStock{
				ProductID:     current.ID,
				Size:          entry.Size,
				StockQuantity: entry.StockQuantity,
			})
		}
		updated.Stock = stock
	}

	return &updated
}
