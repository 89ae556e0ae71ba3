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
	"gorm.io/gorm/clause"
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
	}
}

// cartLineRow is the scan target for the joined cart query.
type cartLineRow struct {
	model.CartItemModel
	ProductName  string `gorm:"column:product_name"`
	PriceCents   int64  `gorm:"column:price_cents"`
	Category     string `gorm:"column:category"`
	ProductImage string `gorm:"column:product_image"`
}

// FindLinesByUser retrieves the user's cart joined with the product fields
// the storefront renders, newest line first.
func (repo *cartRepository) FindLinesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartLine, error) {
	var rows []*cartLineRow

	err := repo.db.WithContext(ctx).
		Table("cart_items").
		Select(`cart_items.*,
			products.name AS product_name,
			products.price_cents AS price_cents,
			products.category AS category,
			COALESCE((SELECT url FROM product_images
				WHERE product_images.product_id = products.id
				ORDER BY position ASC LIMIT 1), '') AS product_image`).
		Joins("JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.user_id = ?", userID).
		Order("cart_items.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cart lines")
	}

	lines := make([]*entity.CartLine, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, &entity.CartLine{
			CartItem:     *toCartItemDomain(&row.CartItemModel),
			ProductName:  row.ProductName,
			PriceCents:   row.PriceCents,
			Category:     row.Category,
			ProductImage: row.ProductImage,
		})
	}

	return lines, nil
}

// AddOrIncrement inserts the line, or adds the quantity onto the existing
// (user, product, size) row in a single upsert statement. Doing the merge in
// the database keeps concurrent adds from losing increments.
func (repo *cartRepository) AddOrIncrement(ctx context.Context, item *entity.CartItem) error {
	itemM := &model.CartItemModel{
		UserID:    item.UserID,
		ProductID: item.ProductID,
		Size:      item.Size,
		Quantity:  item.Quantity,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}, {Name: "size"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity":   gorm.Expr("cart_items.quantity + excluded.quantity"),
				"updated_at": gorm.Expr("now()"),
			}),
		}).
		Create(itemM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add cart item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// UpdateQuantity sets the stored quantity of the user's cart line.
func (repo *cartRepository) UpdateQuantity(ctx context.Context, userID, cartID uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("id = ? AND user_id = ?", cartID, userID).
		Update("quantity", quantity)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update cart quantity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// Delete removes the user's cart line.
func (repo *cartRepository) Delete(ctx context.Context, userID, cartID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", cartID, userID).
		Delete(&model.CartItemModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete cart item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// toCartItemDomain converts a GORM CartItemModel to a domain CartItem entity.
func toCartItemDomain(data *model.CartItemModel) *entity.CartItem {
	if data == nil {
		return nil
	}

	return &entity.CartItem{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Size:      data.Size,
		Quantity:  data.Quantity,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
