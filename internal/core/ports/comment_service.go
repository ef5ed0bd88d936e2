package ports

import (
	"context"

	"github.com/mflix/catalog-api/internal/core/domain"
)

type CommentService interface {
	AddComment(ctx context.Context, email, name, movieID, text string) (*domain.Comment, error)
	GetComment(ctx context.Context, id string) (*domain.Comment, error)
	UpdateComment(ctx context.Context, id, text, email string) (bool, error)
	DeleteComment(ctx context.Context, id, email string) (bool, error)
	MostActiveCommenters(ctx context.Context) ([]domain.Critic, error)
}
