package model

import (
	"time"

	"github.com/google/uuid"
)

// CartItemModel mirrors the 'cart_items' table. The composite unique index
// over (user_id, product_id, size) backs the atomic merge-on-add upsert.
type CartItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:cart_items_user_product_size_key"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:cart_items_user_product_size_key"`
	Size      string    `gorm:"type:varchar(50);not null;uniqueIndex:cart_items_user_product_size_key"`
	Quantity  int       `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
