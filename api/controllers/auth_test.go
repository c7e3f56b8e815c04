package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/lumenshop/storefront-backend/internal/auth"
	"github.com/lumenshop/storefront-backend/internal/customers"
	pkgerrors "github.com/lumenshop/storefront-backend/pkg/errors"
)

type stubAuthService struct {
	loginResp    *auth.LoginResponse
	registerResp *auth.RegisterResponse
	err          error
}

func (s stubAuthService) Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
	return s.loginResp, s.err
}

func (s stubAuthService) Register(ctx context.Context, req auth.RegisterRequest) (*auth.RegisterResponse, error) {
	return s.registerResp, s.err
}

func TestLoginSuccess(t *testing.T) {
	handler := Login(stubAuthService{loginResp: &auth.LoginResponse{
		AccessToken: "token",
		Customer:    customers.CustomerDTO{ID: uuid.New(), Email: "sam@example.com"},
	}}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email":"sam@example.com","password":"secret"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var envelope struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.AccessToken != "token" {
		t.Fatalf("expected token in payload, got %+v", envelope)
	}
}

func TestLoginValidatesFields(t *testing.T) {
	handler := Login(stubAuthService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email":"not-an-email"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var envelope errorEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Errors) != 2 {
		t.Fatalf("expected email and password violations, got %+v", envelope.Errors)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	handler := Login(stubAuthService{err: pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email":"sam@example.com","password":"wrong"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRegisterCreated(t *testing.T) {
	handler := Register(stubAuthService{registerResp: &auth.RegisterResponse{
		AccessToken: "token",
		Customer:    customers.CustomerDTO{ID: uuid.New(), Email: "new@example.com"},
	}}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register",
		strings.NewReader(`{"email":"new@example.com","password":"long enough pass","first_name":"New","last_name":"Customer"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRegisterConflict(t *testing.T) {
	handler := Register(stubAuthService{err: pkgerrors.New(pkgerrors.CodeConflict, "email already registered")}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register",
		strings.NewReader(`{"email":"taken@example.com","password":"long enough pass","first_name":"Dup","last_name":"Licate"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}
