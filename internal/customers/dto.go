package customers

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lumenshop/storefront-backend/pkg/db/models"
)

// CreateCustomerDTO carries the fields needed to persist a new customer.
type CreateCustomerDTO struct {
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
}

// ToModel builds the persistence model with a fresh id and normalized email.
func (d CreateCustomerDTO) ToModel() *models.Customer {
	return &models.Customer{
		ID:           uuid.New(),
		Email:        strings.ToLower(strings.TrimSpace(d.Email)),
		PasswordHash: d.PasswordHash,
		FirstName:    strings.TrimSpace(d.FirstName),
		LastName:     strings.TrimSpace(d.LastName),
		IsActive:     true,
	}
}

// CustomerDTO is the customer projection returned to clients. The password
// hash never leaves the repository layer.
type CustomerDTO struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// FromModel converts the persistence model into the public projection.
func FromModel(record *models.Customer) CustomerDTO {
	return CustomerDTO{
		ID:          record.ID,
		Email:       record.Email,
		FirstName:   record.FirstName,
		LastName:    record.LastName,
		LastLoginAt: record.LastLoginAt,
		CreatedAt:   record.CreatedAt,
	}
}
