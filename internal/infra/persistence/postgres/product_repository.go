// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"boutique/internal/domain/entity"
	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/domain/repository"
	"boutique/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// FindByID retrieves a single product with its ordered images and stock entries.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Stock").
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// Find retrieves products matching the filter, newest first. An unset IsDraft
// defaults to published-only so drafts never leak into public listings.
func (repo *productRepository) Find(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Stock")

	if filter.IsDraft != nil {
		query = query.Where("is_draft = ?", *filter.IsDraft)
	} else {
		query = query.Where("is_draft = ?", false)
	}

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var productModels []*model.ProductModel
	if err := query.Order("created_at DESC").Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// Create persists a new product together with its images and stock entries.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrProductCreationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt
	for _, stock := range product.Stock {
		stock.ProductID = productM.ID
	}

	return nil
}

// Update modifies the product's mutable fields and replaces its image list.
// The draft flag is not touched here; publishing goes through SetPublished.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	updates := map[string]any{
		"name":                  product.Name,
		"description":           product.Description,
		"price_cents":           product.PriceCents,
		"category":              product.Category,
		"material_care":         product.MaterialCare,
		"sustainability_impact": product.SustainabilityImpact,
		"delivery_days":         product.DeliveryDays,
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(updates)
	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return domainerrors.ErrProductUpdateFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	if err := repo.replaceImages(ctx, product.ID, product.Images); err != nil {
		return err
	}

	return nil
}

// ReplaceStock deletes all stock entries of the product and inserts the given set.
func (repo *productRepository) ReplaceStock(ctx context.Context, productID uuid.UUID, stock []*entity.ProductStock) error {
	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&model.ProductStockModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product stock")
	}

	if len(stock) == 0 {
		return nil
	}

	stockModels := make([]*model.ProductStockModel, 0, len(stock))
	for _, entry := range stock {
		stockModels = append(stockModels, &model.ProductStockModel{
			ProductID:     productID,
			Size:          entry.Size,
			StockQuantity: entry.StockQuantity,
		})
	}

	if err := repo.db.WithContext(ctx).Create(&stockModels).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert product stock")
	}

	return nil
}

// SetPublished clears or sets the draft flag.
func (repo *productRepository) SetPublished(ctx context.Context, id uuid.UUID, published bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Update("is_draft", !published)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update draft flag")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes the product and its dependent rows, including cart lines
// and wishlist entries that reference it. Callers wanting the whole cascade
// to be atomic run this inside the transaction manager.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", id).
		Delete(&model.CartItemModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product cart lines")
	}

	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", id).
		Delete(&model.WishlistItemModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product wishlist entries")
	}

	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", id).
		Delete(&model.ProductStockModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product stock")
	}

	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", id).
		Delete(&model.ProductImageModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product images")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) replaceImages(ctx context.Context, productID uuid.UUID, images []string) error {
	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&model.ProductImageModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product images")
	}

	if len(images) == 0 {
		return nil
	}

	imageModels := make([]*model.ProductImageModel, 0, len(images))
	for position, url := range images {
		imageModels = append(imageModels, &model.ProductImageModel{
			ProductID: productID,
			URL:       url,
			Position:  position,
		})
	}

	if err := repo.db.WithContext(ctx).Create(&imageModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to insert product images")
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	images := make([]string, 0, len(data.Images))
	for _, img := range data.Images {
		images = append(images, img.URL)
	}

	stock := make([]*entity.ProductStock, 0, len(data.Stock))
	for _, entry := range data.Stock {
		stock = append(stock, &entity.ProductStock{
			ProductID:     entry.ProductID,
			Size:          entry.Size,
			StockQuantity: entry.StockQuantity,
		})
	}

	return &entity.Product{
		ID:                   data.ID,
		Name:                 data.Name,
		Description:          data.Description,
		PriceCents:           data.PriceCents,
		Category:             data.Category,
		Images:               images,
		MaterialCare:         data.MaterialCare,
		SustainabilityImpact: data.SustainabilityImpact,
		DeliveryDays:         data.DeliveryDays,
		IsDraft:              data.IsDraft,
		Stock:                stock,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel for persistence.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	images := make([]*model.ProductImageModel, 0, len(data.Images))
	for position, url := range data.Images {
		images = append(images, &model.ProductImageModel{
			URL:      url,
			Position: position,
		})
	}

	stock := make([]*model.ProductStockModel, 0, len(data.Stock))
	for _, entry := range data.Stock {
		stock = append(stock, &model.ProductStockModel{
			Size:          entry.Size,
			StockQuantity: entry.StockQuantity,
		})
	}

	return &model.ProductModel{
		ID:                   data.ID,
		Name:                 data.Name,
		Description:          data.Description,
		PriceCents:           data.PriceCents,
		Category:             data.Category,
		MaterialCare:         data.MaterialCare,
		SustainabilityImpact: data.SustainabilityImpact,
		DeliveryDays:         data.DeliveryDays,
		IsDraft:              data.IsDraft,
		Images:               images,
		Stock:                stock,
	}
}
