package ports

import (
	"context"

	"github.com/mflix/catalog-api/internal/core/domain"
)

// ReportCache memoizes the most-active-commenters report. Implementations
// must tolerate concurrent use; a miss is (nil, false, nil).
type ReportCache interface {
	Get(ctx context.Context) ([]domain.Critic, bool, error)
	Set(ctx context.Context, critics []domain.Critic) error
}
