package wishlist

import (
	"time"

	"github.com/google/uuid"
	"github.com/lumenshop/storefront-backend/pkg/db/models"
)

// EntryDTO is one saved-item reference as returned to clients.
type EntryDTO struct {
	ID      uuid.UUID `json:"id"`
	ItemRef uuid.UUID `json:"item_ref"`
	AddedAt time.Time `json:"added_at"`
	Notes   *string   `json:"notes,omitempty"`
}

// WishlistDTO is the customer-facing wishlist view. TotalItems is derived from
// the entries on every read and never stored. A customer who has never added
// an item gets the zero-entry shape with no document id.
type WishlistDTO struct {
	ID         *uuid.UUID `json:"id,omitempty"`
	CustomerID uuid.UUID  `json:"customer_id"`
	Entries    []EntryDTO `json:"entries"`
	TotalItems int        `json:"total_items"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

// EmptyWishlistDTO is the logical wishlist for a customer with no document.
func EmptyWishlistDTO(customerID uuid.UUID) WishlistDTO {
	return WishlistDTO{
		CustomerID: customerID,
		Entries:    []EntryDTO{},
	}
}

func toDTO(record *models.Wishlist) WishlistDTO {
	entries := make([]EntryDTO, 0, len(record.Entries))
	for _, entry := range record.Entries {
		entries = append(entries, EntryDTO{
			ID:      entry.ID,
			ItemRef: entry.ProductID,
			AddedAt: entry.AddedAt,
			Notes:   entry.Notes,
		})
	}

	id := record.ID
	createdAt := record.CreatedAt
	updatedAt := record.UpdatedAt
	return WishlistDTO{
		ID:         &id,
		CustomerID: record.CustomerID,
		Entries:    entries,
		TotalItems: len(entries),
		CreatedAt:  &createdAt,
		UpdatedAt:  &updatedAt,
	}
}
