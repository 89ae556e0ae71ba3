package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type ProductModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name                 string    `gorm:"type:varchar(255);not null"`
	Description          string    `gorm:"type:text"`
	PriceCents           int64     `gorm:"not null"`
	Category             string    `gorm:"type:varchar(100);not null;index"`
	MaterialCare         string    `gorm:"type:text"`
	SustainabilityImpact string    `gorm:"type:text"`
	DeliveryDays         int       `gorm:"not null;default:0"`
	IsDraft              bool      `gorm:"not null;default:true;index"`
	CreatedAt            time.Time
	UpdatedAt            time.Time

	Images []*ProductImageModel `gorm:"foreignKey:ProductID"`
	Stock  []*ProductStockModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductImageModel mirrors the 'product_images' table. Position preserves
// the admin's image ordering.
type ProductImageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	URL       string    `gorm:"type:text;not null"`
	Position  int       `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductImageModel) TableName() string {
	return "product_images"
}

// ProductStockModel mirrors the 'product_stock' table. Rows are replaced
// wholesale on product updates, never patched in place.
type ProductStockModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Size          string    `gorm:"type:varchar(50);not null"`
	StockQuantity int       `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductStockModel) TableName() string {
	return "product_stock"
}
