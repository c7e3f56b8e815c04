package wishlist

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lumenshop/storefront-backend/pkg/db/models"
	pkgerrors "github.com/lumenshop/storefront-backend/pkg/errors"
	"gorm.io/gorm"
)

// Store is the persistence surface the service depends on.
type Store interface {
	FindByCustomer(ctx context.Context, customerID uuid.UUID) (*models.Wishlist, error)
	Create(ctx context.Context, customerID uuid.UUID) (*models.Wishlist, error)
	AppendEntry(ctx context.Context, wishlistID, productID uuid.UUID, notes *string) error
	RemoveEntries(ctx context.Context, wishlistID, productID uuid.UUID) (int64, error)
	UpdateEntryNotes(ctx context.Context, wishlistID, productID uuid.UUID, notes *string) (int64, error)
}

// ProductFinder resolves catalog items referenced by wishlist entries.
type ProductFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

// ServiceParams groups dependencies for the wishlist service.
type ServiceParams struct {
	WishlistRepo Store
	ProductRepo  ProductFinder
}

// Service exposes business rules for wishlist management. Every operation is
// scoped to the authenticated customer id resolved upstream.
type Service interface {
	Get(ctx context.Context, customerID uuid.UUID) (WishlistDTO, error)
	AddItem(ctx context.Context, customerID, itemRef uuid.UUID, notes *string) (WishlistDTO, error)
	RemoveItem(ctx context.Context, customerID, itemRef uuid.UUID) (WishlistDTO, error)
	UpdateNotes(ctx context.Context, customerID, itemRef uuid.UUID, notes *string) (WishlistDTO, error)
}

type service struct {
	wishlistRepo Store
	productRepo  ProductFinder
}

// NewService builds a wishlist service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.WishlistRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "wishlist repo is required")
	}
	if params.ProductRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product repo is required")
	}
	return &service{
		wishlistRepo: params.WishlistRepo,
		productRepo:  params.ProductRepo,
	}, nil
}

// Get returns the customer's wishlist. A customer without a document gets the
// empty logical wishlist, never an error.
func (s *service) Get(ctx context.Context, customerID uuid.UUID) (WishlistDTO, error) {
	if customerID == uuid.Nil {
		return WishlistDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "customer id is required")
	}

	record, err := s.wishlistRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmptyWishlistDTO(customerID), nil
		}
		return WishlistDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load wishlist")
	}
	return toDTO(record), nil
}

// AddItem verifies the product exists, lazily creates the wishlist document
// and appends the entry. Appending the same product again is allowed and
// results in a second entry.
func (s *service) AddItem(ctx context.Context, customerID, itemRef uuid.UUID, notes *string) (WishlistDTO, error) {
	if customerID == uuid.Nil {
		return WishlistDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "customer id is required")
	}
	if itemRef == uuid.Nil {
		return WishlistDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "item ref is required")
	}

	if _, err := s.productRepo.FindByID(ctx, itemRef); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return WishlistDTO{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "item not found in catalog")
		}
		return WishlistDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load catalog item")
	}

	record, err := s.ensureWishlist(ctx, customerID)
	if err != nil {
		return WishlistDTO{}, err
	}

	if err := s.wishlistRepo.AppendEntry(ctx, record.ID, itemRef, notes); err != nil {
		return WishlistDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "append wishlist entry")
	}

	return s.reload(ctx, customerID)
}

// RemoveItem deletes every entry matching the item reference. The wishlist is
// left unmodified when it does not exist or when no entry matches.
func (s *service) RemoveItem(ctx context.Context, customerID, itemRef uuid.UUID) (WishlistDTO, error) {
	record, err := s.requireWishlist(ctx, customerID, itemRef)
	if err != nil {
		return WishlistDTO{}, err
	}

	affected, err := s.wishlistRepo.RemoveEntries(ctx, record.ID, itemRef)
	if err != nil {
		return WishlistDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "remove wishlist entries")
	}
	if affected == 0 {
		return WishlistDTO{}, pkgerrors.New(pkgerrors.CodeNotFound, "item not in wishlist")
	}

	return s.reload(ctx, customerID)
}

// UpdateNotes replaces the notes on every entry matching the item reference.
func (s *service) UpdateNotes(ctx context.Context, customerID, itemRef uuid.UUID, notes *string) (WishlistDTO, error) {
	record, err := s.requireWishlist(ctx, customerID, itemRef)
	if err != nil {
		return WishlistDTO{}, err
	}

	affected, err := s.wishlistRepo.UpdateEntryNotes(ctx, record.ID, itemRef, notes)
	if err != nil {
		return WishlistDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update wishlist notes")
	}
	if affected == 0 {
		return WishlistDTO{}, pkgerrors.New(pkgerrors.CodeNotFound, "item not in wishlist")
	}

	return s.reload(ctx, customerID)
}

func (s *service) ensureWishlist(ctx context.Context, customerID uuid.UUID) (*models.Wishlist, error) {
	record, err := s.wishlistRepo.FindByCustomer(ctx, customerID)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load wishlist")
	}

	created, err := s.wishlistRepo.Create(ctx, customerID)
	if err != nil {
		if errors.Is(err, ErrDuplicateWishlist) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "wishlist already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create wishlist")
	}
	return created, nil
}

func (s *service) requireWishlist(ctx context.Context, customerID, itemRef uuid.UUID) (*models.Wishlist, error) {
	if customerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer id is required")
	}
	if itemRef == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "item ref is required")
	}

	record, err := s.wishlistRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "wishlist not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load wishlist")
	}
	return record, nil
}

func (s *service) reload(ctx context.Context, customerID uuid.UUID) (WishlistDTO, error) {
	record, err := s.wishlistRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return WishlistDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload wishlist")
	}
	return toDTO(record), nil
}
