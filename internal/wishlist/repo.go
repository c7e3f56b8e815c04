package wishlist

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lumenshop/storefront-backend/pkg/db"
	"github.com/lumenshop/storefront-backend/pkg/db/models"
	"gorm.io/gorm"
)

const customerUniqueConstraint = "wishlists_customer_id_key"

// ErrDuplicateWishlist reports that another request created the customer's
// wishlist first. The losing insert must never overwrite the winner.
var ErrDuplicateWishlist = errors.New("wishlist already exists for customer")

// Repository encapsulates wishlist persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a wishlist repository bound to the provided gorm DB.
func NewRepository(gdb *gorm.DB) *Repository {
	return &Repository{db: gdb}
}

// FindByCustomer loads the customer's wishlist with entries ordered by when
// they were added. Returns gorm.ErrRecordNotFound when no document exists.
func (r *Repository) FindByCustomer(ctx context.Context, customerID uuid.UUID) (*models.Wishlist, error) {
	var record models.Wishlist
	err := r.db.WithContext(ctx).
		Preload("Entries", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("added_at ASC, id ASC")
		}).
		Where("customer_id = ?", customerID).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Create inserts the customer's wishlist document in a single atomic insert.
// The unique index on customer_id decides races between concurrent creators;
// the loser gets ErrDuplicateWishlist.
func (r *Repository) Create(ctx context.Context, customerID uuid.UUID) (*models.Wishlist, error) {
	if customerID == uuid.Nil {
		return nil, gorm.ErrInvalidValue
	}

	now := time.Now().UTC()
	record := models.Wishlist{
		ID:         uuid.New(),
		CustomerID: customerID,
		UpdatedAt:  now,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		if db.IsUniqueViolation(err, customerUniqueConstraint) {
			return nil, ErrDuplicateWishlist
		}
		return nil, err
	}
	return &record, nil
}

// AppendEntry adds one item reference to the wishlist and touches updated_at.
// The same product may be appended any number of times.
func (r *Repository) AppendEntry(ctx context.Context, wishlistID, productID uuid.UUID, notes *string) error {
	entry := models.WishlistEntry{
		ID:         uuid.New(),
		WishlistID: wishlistID,
		ProductID:  productID,
		Notes:      notes,
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		return touch(tx, wishlistID)
	})
}

// RemoveEntries deletes every entry referencing the product and touches
// updated_at. The affected count is zero when nothing matched, in which case
// the document is left untouched.
func (r *Repository) RemoveEntries(ctx context.Context, wishlistID, productID uuid.UUID) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("wishlist_id = ? AND product_id = ?", wishlistID, productID).
			Delete(&models.WishlistEntry{})
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		if affected == 0 {
			return nil
		}
		return touch(tx, wishlistID)
	})
	return affected, err
}

// UpdateEntryNotes replaces the notes on every entry referencing the product
// and touches updated_at. Zero affected rows means no entry matched.
func (r *Repository) UpdateEntryNotes(ctx context.Context, wishlistID, productID uuid.UUID, notes *string) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.WishlistEntry{}).
			Where("wishlist_id = ? AND product_id = ?", wishlistID, productID).
			Update("notes", notes)
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		if affected == 0 {
			return nil
		}
		return touch(tx, wishlistID)
	})
	return affected, err
}

func touch(tx *gorm.DB, wishlistID uuid.UUID) error {
	return tx.Model(&models.Wishlist{}).
		Where("id = ?", wishlistID).
		Update("updated_at", time.Now().UTC()).Error
}
