package customers

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lumenshop/storefront-backend/pkg/db"
	"github.com/lumenshop/storefront-backend/pkg/db/models"
	"gorm.io/gorm"
)

const emailUniqueConstraint = "customers_email_key"

// ErrEmailTaken reports a registration against an email that already has an
// account.
var ErrEmailTaken = errors.New("email already registered")

// Repository exposes customer persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a customers repo bound to the provided GORM DB.
func NewRepository(gdb *gorm.DB) *Repository {
	return &Repository{db: gdb}
}

// Create inserts a new customer. The unique email index decides races between
// concurrent registrations.
func (r *Repository) Create(ctx context.Context, dto CreateCustomerDTO) (*models.Customer, error) {
	record := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		if db.IsUniqueViolation(err, emailUniqueConstraint) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return record, nil
}

// FindByEmail retrieves the customer matching the provided email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.Customer, error) {
	var record models.Customer
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// FindByID loads a customer by uuid.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	var record models.Customer
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// UpdateLastLogin refreshes the customer's last_login_at timestamp.
func (r *Repository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("id = ?", id).
		UpdateColumn("last_login_at", at).Error
}
