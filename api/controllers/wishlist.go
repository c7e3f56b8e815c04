package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lumenshop/storefront-backend/api/admission"
	"github.com/lumenshop/storefront-backend/api/middleware"
	"github.com/lumenshop/storefront-backend/api/responses"
	"github.com/lumenshop/storefront-backend/internal/wishlist"
	"github.com/lumenshop/storefront-backend/pkg/config"
	pkgerrors "github.com/lumenshop/storefront-backend/pkg/errors"
	"github.com/lumenshop/storefront-backend/pkg/logger"
)

type addWishlistItemPayload struct {
	ItemRef string  `json:"item_ref" validate:"required,uuid"`
	Notes   *string `json:"notes" validate:"omitempty,max=500"`
}

type updateWishlistNotesPayload struct {
	Notes string `json:"notes" validate:"required,max=500"`
}

// WishlistGet returns the authenticated customer's wishlist, empty if none
// exists yet.
func WishlistGet(svc wishlist.Service, jwtCfg config.JWTConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist service unavailable"))
			return
		}

		customerID, err := admission.Admit(r, jwtCfg, nil)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		ctx = customerContext(ctx, logg, customerID)

		resp, err := svc.Get(ctx, customerID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, resp)
	}
}

// WishlistAddItem appends a catalog item to the customer's wishlist, creating
// the wishlist on first use.
func WishlistAddItem(svc wishlist.Service, jwtCfg config.JWTConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist service unavailable"))
			return
		}

		var payload addWishlistItemPayload
		customerID, err := admission.Admit(r, jwtCfg, &payload)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		ctx = customerContext(ctx, logg, customerID)

		itemRef, err := uuid.Parse(payload.ItemRef)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid item ref").
				WithDetails(map[string]string{"item_ref": "must be a valid uuid"}))
			return
		}

		resp, err := svc.AddItem(ctx, customerID, itemRef, payload.Notes)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, resp)
	}
}

// WishlistRemoveItem removes every entry referencing the item.
func WishlistRemoveItem(svc wishlist.Service, jwtCfg config.JWTConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist service unavailable"))
			return
		}

		customerID, err := admission.Admit(r, jwtCfg, nil)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		ctx = customerContext(ctx, logg, customerID)

		itemRef, err := itemRefParam(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		resp, err := svc.RemoveItem(ctx, customerID, itemRef)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, resp)
	}
}

// WishlistUpdateNotes replaces the notes on every entry referencing the item.
func WishlistUpdateNotes(svc wishlist.Service, jwtCfg config.JWTConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist service unavailable"))
			return
		}

		var payload updateWishlistNotesPayload
		customerID, err := admission.Admit(r, jwtCfg, &payload)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		ctx = customerContext(ctx, logg, customerID)

		itemRef, err := itemRefParam(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		resp, err := svc.UpdateNotes(ctx, customerID, itemRef, &payload.Notes)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, resp)
	}
}

func itemRefParam(r *http.Request) (uuid.UUID, error) {
	raw := strings.TrimSpace(chi.URLParam(r, "itemRef"))
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "item ref is required").
			WithDetails(map[string]string{"item_ref": "is required"})
	}
	itemRef, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid item ref").
			WithDetails(map[string]string{"item_ref": "must be a valid uuid"})
	}
	return itemRef, nil
}

func customerContext(ctx context.Context, logg *logger.Logger, customerID uuid.UUID) context.Context {
	ctx = middleware.WithCustomerID(ctx, customerID.String())
	if logg != nil {
		ctx = logg.WithCustomerID(ctx, customerID.String())
	}
	return ctx
}
