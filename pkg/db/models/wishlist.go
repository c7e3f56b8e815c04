package models

import (
	"time"

	"github.com/google/uuid"
)

// Wishlist is the per-customer saved-items document. The unique index on
// customer_id is the only guard against two requests creating the document
// concurrently; creation must be a single atomic insert.
type Wishlist struct {
	ID         uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	CustomerID uuid.UUID       `gorm:"column:customer_id;type:uuid;not null;uniqueIndex:wishlists_customer_id_key"`
	Entries    []WishlistEntry `gorm:"foreignKey:WishlistID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time       `gorm:"column:updated_at"`
}

// WishlistEntry is one saved-item reference. Entries have no identity outside
// their wishlist, and the same product may appear more than once.
type WishlistEntry struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	WishlistID uuid.UUID `gorm:"column:wishlist_id;type:uuid;not null;index:wishlist_entries_wishlist_id_idx"`
	ProductID  uuid.UUID `gorm:"column:product_id;type:uuid;not null;index:wishlist_entries_product_id_idx"`
	AddedAt    time.Time `gorm:"column:added_at;autoCreateTime"`
	Notes      *string   `gorm:"column:notes"`
}
