package catalog

import (
	"context"

	pkgerrors "github.com/lumenshop/storefront-backend/pkg/errors"
	"github.com/lumenshop/storefront-backend/pkg/pagination"
)

// Lister is the persistence surface the browse service depends on.
type Lister interface {
	ListActive(ctx context.Context, params pagination.Params) (ProductPageDTO, error)
}

// Service exposes the public catalog browse surface.
type Service interface {
	Browse(ctx context.Context, params pagination.Params) (ProductPageDTO, error)
}

type service struct {
	repo Lister
}

// NewService builds a catalog service with the required dependencies.
func NewService(repo Lister) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog repo is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Browse(ctx context.Context, params pagination.Params) (ProductPageDTO, error) {
	page, err := s.repo.ListActive(ctx, params)
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil {
			return ProductPageDTO{}, typed
		}
		return ProductPageDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list catalog")
	}
	return page, nil
}
