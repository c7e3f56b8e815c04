package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/lumenshop/storefront-backend/api/responses"
	"github.com/lumenshop/storefront-backend/internal/catalog"
	pkgerrors "github.com/lumenshop/storefront-backend/pkg/errors"
	"github.com/lumenshop/storefront-backend/pkg/logger"
	"github.com/lumenshop/storefront-backend/pkg/pagination"
)

// CatalogProducts serves the public cursor-paginated product listing.
func CatalogProducts(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		limit := 0
		if limitStr := strings.TrimSpace(r.URL.Query().Get("limit")); limitStr != "" {
			value, err := strconv.Atoi(limitStr)
			if err != nil || value <= 0 {
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "limit must be a positive integer").
					WithDetails(map[string]string{"limit": "must be a positive integer"}))
				return
			}
			limit = value
		}

		resp, err := svc.Browse(ctx, pagination.Params{
			Limit:  limit,
			Cursor: strings.TrimSpace(r.URL.Query().Get("cursor")),
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, resp)
	}
}
