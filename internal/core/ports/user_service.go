package ports

import (
	"context"

	"github.com/mflix/catalog-api/internal/core/domain"
)

type UserService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	// Login verifies credentials, mints a JWT and upserts the user session.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Logout(ctx context.Context, email string) error
	Get(ctx context.Context, email string) (*domain.User, error)
	// DeleteAccount re-checks the password, then removes sessions and user.
	DeleteAccount(ctx context.Context, email, password string) error
	UpdatePreferences(ctx context.Context, email string, preferences map[string]any) error
}
