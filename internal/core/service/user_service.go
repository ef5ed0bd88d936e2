package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mflix/catalog-api/internal/api/metrics"
	"github.com/mflix/catalog-api/internal/core/domain"
	"github.com/mflix/catalog-api/internal/core/ports"
)

// UserService implements registration, login/logout and account management.
type UserService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewUserService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *UserService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &UserService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// Register hashes the password and inserts the user. Duplicate emails surface
// as domain.ErrUserExists from the repository's unique index.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:           name,
		Email:          email,
		HashedPassword: string(hash),
		Preferences:    map[string]any{},
	}

	if err := s.repo.AddUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", email).Msg("user registered")
	return user, nil
}

// Login verifies credentials, mints an HS256 token and upserts the user
// session. A second login for the same user replaces the session token.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.GetUser(ctx, email)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("not_found").Inc()
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("bad_password").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	if err := s.repo.CreateSession(ctx, user.Email, token); err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to create session")
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return token, user, nil
}

// Logout removes the user's session. A missing session is not an error.
func (s *UserService) Logout(ctx context.Context, email string) error {
	return s.repo.DeleteSessions(ctx, email)
}

func (s *UserService) Get(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.GetUser(ctx, email)
}

// DeleteAccount re-checks the password before removing the account. The
// repository clears sessions first and never touches the user document when
// that step fails.
func (s *UserService) DeleteAccount(ctx context.Context, email, password string) error {
	user, err := s.repo.GetUser(ctx, email)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)) != nil {
		return domain.ErrInvalidCredentials
	}

	if err := s.repo.DeleteUser(ctx, email); err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to delete user")
		return err
	}

	s.logger.Info().Str("email", email).Msg("user deleted")
	return nil
}

// UpdatePreferences replaces the user's preferences wholesale. Nil
// preferences are rejected by the repository before any mutation.
func (s *UserService) UpdatePreferences(ctx context.Context, email string, preferences map[string]any) error {
	return s.repo.UpdatePreferences(ctx, email, preferences)
}

func (s *UserService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"email": user.Email,
		"name":  user.Name,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
