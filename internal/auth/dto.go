package auth

import "github.com/lumenshop/storefront-backend/internal/customers"

// LoginRequest carries the credentials for a login attempt.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the identity token and the customer it names.
type LoginResponse struct {
	AccessToken string                `json:"access_token"`
	Customer    customers.CustomerDTO `json:"customer"`
}

// RegisterRequest carries a new account application.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=10,max=128"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
}

// RegisterResponse mirrors LoginResponse so fresh accounts are signed in
// immediately.
type RegisterResponse struct {
	AccessToken string                `json:"access_token"`
	Customer    customers.CustomerDTO `json:"customer"`
}
