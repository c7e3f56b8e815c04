package models

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a catalog listing. The wishlist only references it by id;
// catalog ownership lives elsewhere.
type Product struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	SKU        string    `gorm:"column:sku;not null;uniqueIndex:products_sku_key"`
	Title      string    `gorm:"column:title;not null"`
	Subtitle   *string   `gorm:"column:subtitle"`
	PriceCents int       `gorm:"column:price_cents;not null"`
	IsActive   bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
