package types

// SuccessEnvelope is the uniform success payload for every endpoint.
type SuccessEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// FieldError is one client-facing failure; Field is set for structural
// validation errors and omitted otherwise.
type FieldError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ErrorEnvelope is the uniform error payload for every endpoint.
type ErrorEnvelope struct {
	Success bool         `json:"success"`
	Errors  []FieldError `json:"errors"`
}
