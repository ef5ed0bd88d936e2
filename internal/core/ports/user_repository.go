package ports

import (
	"context"

	"github.com/mflix/catalog-api/internal/core/domain"
)

// UserRepository defines persistence operations for users and their sessions.
type UserRepository interface {
	// AddUser inserts a new user under majority write concern. A duplicate
	// email is rejected with domain.ErrUserExists.
	AddUser(ctx context.Context, user *domain.User) error
	// GetUser retrieves a user by email, or domain.ErrUserNotFound.
	GetUser(ctx context.Context, email string) (*domain.User, error)
	// DeleteUser removes the user's sessions and then the user document.
	// The user document is never touched when the session delete fails.
	DeleteUser(ctx context.Context, email string) error
	// UpdatePreferences replaces the whole preferences mapping for the user.
	// A nil mapping is rejected with *domain.InvalidOperationError before any
	// database call.
	UpdatePreferences(ctx context.Context, email string, preferences map[string]any) error

	// CreateSession upserts the session document for userID, setting the
	// token. At most one session per user exists.
	CreateSession(ctx context.Context, userID, jwt string) error
	// GetSession retrieves the session for userID, or domain.ErrSessionNotFound.
	GetSession(ctx context.Context, userID string) (*domain.Session, error)
	// DeleteSessions removes the session for userID. Deleting a missing
	// session is not an error.
	DeleteSessions(ctx context.Context, userID string) error
}
