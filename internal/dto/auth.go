package dto

// RegisterRequest represents the request payload for user registration.
// The wire field is literally named passwordHash for compatibility with the
// existing browser clients, but it carries the raw password; the server hashes
// it before storage.
type RegisterRequest struct {
	Email        string `json:"email" validate:"required,email"`
	PasswordHash string `json:"passwordHash" validate:"required"`
}

// LoginRequest represents the request payload for user login. Same wire naming
// caveat as RegisterRequest: passwordHash is the raw password.
type LoginRequest struct {
	Email        string `json:"email" validate:"required,email"`
	PasswordHash string `json:"passwordHash" validate:"required"`
}

// MessageResponse represents a confirmation message in API responses
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
