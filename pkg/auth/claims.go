package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessTokenClaims represents the typed JWT issued to customers. The token is
// stateless; everything needed to authorize a request travels in the claims.
type AccessTokenClaims struct {
	CustomerID uuid.UUID `json:"customer_id"`
	jwt.RegisteredClaims
}
