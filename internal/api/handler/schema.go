package handler

import "github.com/mflix/catalog-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

// --- Comments ---

type addCommentRequest struct {
	MovieID string `json:"movie_id" validate:"required"`
	Text    string `json:"text"     validate:"required"`
}

type updateCommentRequest struct {
	Text string `json:"text" validate:"required"`
}

type commentStatusResponse struct {
	Status string `json:"status"`
}

// --- Users ---

// preferencesRequest deliberately binds into a plain map: a JSON null body
// arrives as a nil map, which the repository rejects before any mutation.
type preferencesRequest struct {
	Preferences map[string]any `json:"preferences"`
}

type deleteAccountRequest struct {
	Password string `json:"password" validate:"required"`
}
