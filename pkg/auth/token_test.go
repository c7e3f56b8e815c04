package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lumenshop/storefront-backend/pkg/config"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "secret",
		Issuer:            "storefront",
		ExpirationMinutes: 30,
	}
}

func TestMintAndVerifyAccessToken(t *testing.T) {
	cfg := testJWTConfig()
	now := time.Now().UTC()
	customerID := uuid.New()

	token, err := MintAccessToken(cfg, now, customerID)
	if err != nil {
		t.Fatalf("mint access token: %v", err)
	}

	claims, err := VerifyAccessToken(cfg, token)
	if err != nil {
		t.Fatalf("verify access token: %v", err)
	}

	if claims.CustomerID != customerID {
		t.Fatalf("expected customer_id %s, got %s", customerID, claims.CustomerID)
	}
	if claims.Issuer != cfg.Issuer {
		t.Fatalf("expected issuer %s, got %s", cfg.Issuer, claims.Issuer)
	}

	exp := now.Add(time.Duration(cfg.ExpirationMinutes) * time.Minute)
	diff := claims.ExpiresAt.Sub(exp)
	if diff < 0 {
		diff = -diff
	}
	if diff >= time.Second {
		t.Fatalf("expected exp roughly %v, got %v (diff %v)", exp.UTC(), claims.ExpiresAt.UTC(), diff)
	}
}

func TestVerifyAccessTokenWrongSecret(t *testing.T) {
	cfg := testJWTConfig()
	token, err := MintAccessToken(cfg, time.Now(), uuid.New())
	if err != nil {
		t.Fatalf("mint access token: %v", err)
	}

	other := cfg
	other.Secret = "rotated"
	_, err = VerifyAccessToken(other, token)
	if !errors.Is(err, ErrTokenSignature) {
		t.Fatalf("expected signature failure, got %v", err)
	}
}

func TestVerifyAccessTokenExpired(t *testing.T) {
	cfg := testJWTConfig()
	cfg.ExpirationMinutes = 15
	issuedAt := time.Now().Add(-time.Hour)

	token, err := MintAccessToken(cfg, issuedAt, uuid.New())
	if err != nil {
		t.Fatalf("mint access token: %v", err)
	}

	_, err = VerifyAccessToken(cfg, token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected expiry failure, got %v", err)
	}
}

func TestVerifyAccessTokenMalformed(t *testing.T) {
	cfg := testJWTConfig()
	_, err := VerifyAccessToken(cfg, "not-a-token")
	if !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("expected malformed failure, got %v", err)
	}
}

func TestMintAccessTokenRequiresSubject(t *testing.T) {
	cfg := testJWTConfig()
	if _, err := MintAccessToken(cfg, time.Now(), uuid.Nil); err == nil {
		t.Fatal("expected error for nil customer id")
	}
}

func TestMintAccessTokenRequiresSecret(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Secret = ""
	if _, err := MintAccessToken(cfg, time.Now(), uuid.New()); err == nil {
		t.Fatal("expected error when secret is missing")
	}
}
