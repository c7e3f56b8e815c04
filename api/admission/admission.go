package admission

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/lumenshop/storefront-backend/api/validators"
	pkgauth "github.com/lumenshop/storefront-backend/pkg/auth"
	"github.com/lumenshop/storefront-backend/pkg/config"
	pkgerrors "github.com/lumenshop/storefront-backend/pkg/errors"
)

// Admit gates a request in two stages: structural validation of the body
// first, then bearer token verification. A request with field violations is
// rejected with all of them before the token is ever inspected, so a caller
// with a bad payload and a bad token hears about the payload.
//
// dest is the request body target; pass nil for bodyless methods. The returned
// id is the authenticated customer.
func Admit(r *http.Request, cfg config.JWTConfig, dest any) (uuid.UUID, error) {
	if dest != nil {
		if err := validators.DecodeJSONBody(r, dest); err != nil {
			return uuid.Nil, err
		}
	}
	return verifyBearer(r, cfg)
}

func verifyBearer(r *http.Request, cfg config.JWTConfig) (uuid.UUID, error) {
	raw := strings.TrimSpace(r.Header.Get("Authorization"))
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials")
	}

	token := raw
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		token = strings.TrimSpace(token[7:])
	}
	if token == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials")
	}

	claims, err := pkgauth.VerifyAccessToken(cfg, token)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, authMessage(err))
	}

	return claims.CustomerID, nil
}

func authMessage(err error) string {
	switch {
	case errors.Is(err, pkgauth.ErrTokenExpired):
		return "token expired"
	case errors.Is(err, pkgauth.ErrTokenSignature):
		return "invalid token signature"
	default:
		return "malformed token"
	}
}
