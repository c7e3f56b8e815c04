package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/lumenshop/storefront-backend/pkg/db/models"
)

// ProductDTO is the public browse projection of a catalog item.
type ProductDTO struct {
	ID         uuid.UUID `json:"id"`
	SKU        string    `json:"sku"`
	Title      string    `json:"title"`
	Subtitle   *string   `json:"subtitle,omitempty"`
	PriceCents int       `json:"price_cents"`
	CreatedAt  time.Time `json:"created_at"`
}

// ProductPageDTO is one cursor page of catalog items.
type ProductPageDTO struct {
	Items      []ProductDTO `json:"items"`
	NextCursor string       `json:"next_cursor,omitempty"`
}

func toProductDTO(record models.Product) ProductDTO {
	return ProductDTO{
		ID:         record.ID,
		SKU:        record.SKU,
		Title:      record.Title,
		Subtitle:   record.Subtitle,
		PriceCents: record.PriceCents,
		CreatedAt:  record.CreatedAt,
	}
}
