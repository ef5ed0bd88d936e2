package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mflix/catalog-api/internal/api/metrics"
	"github.com/mflix/catalog-api/internal/core/domain"
	"github.com/mflix/catalog-api/internal/core/ports"
)

// CommentService orchestrates comment CRUD and the commenters report.
// Ownership checks are not performed here: the caller email is passed down
// into the repository filter, which is the only place ownership is enforced.
type CommentService struct {
	repo   ports.CommentRepository
	cache  ports.ReportCache // nil disables report caching
	logger zerolog.Logger
}

func NewCommentService(repo ports.CommentRepository, cache ports.ReportCache, logger zerolog.Logger) *CommentService {
	return &CommentService{repo: repo, cache: cache, logger: logger}
}

// AddComment builds a comment owned by email and inserts it. The id is
// assigned here; the repository still rejects empty ids regardless of caller.
func (s *CommentService) AddComment(ctx context.Context, email, name, movieID, text string) (*domain.Comment, error) {
	comment := &domain.Comment{
		ID:      primitive.NewObjectID().Hex(),
		Name:    name,
		Email:   email,
		MovieID: movieID,
		Text:    text,
		Date:    time.Now().UTC(),
	}

	added, err := s.repo.Add(ctx, comment)
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to add comment")
		return nil, err
	}

	s.logger.Info().Str("comment_id", added.ID).Str("email", email).Msg("comment added")
	metrics.CommentWritesTotal.WithLabelValues("add", "ok").Inc()
	return added, nil
}

func (s *CommentService) GetComment(ctx context.Context, id string) (*domain.Comment, error) {
	return s.repo.Get(ctx, id)
}

// UpdateComment applies new text on behalf of email. A false return means the
// ownership filter matched nothing (wrong id or not the owner).
func (s *CommentService) UpdateComment(ctx context.Context, id, text, email string) (bool, error) {
	ok, err := s.repo.Update(ctx, id, text, email)
	if err != nil {
		metrics.CommentWritesTotal.WithLabelValues("update", "error").Inc()
		return false, err
	}
	if !ok {
		metrics.CommentWritesTotal.WithLabelValues("update", "no_match").Inc()
		return false, nil
	}
	metrics.CommentWritesTotal.WithLabelValues("update", "ok").Inc()
	return true, nil
}

// DeleteComment removes the comment on behalf of email, subject to the same
// ownership filter as UpdateComment.
func (s *CommentService) DeleteComment(ctx context.Context, id, email string) (bool, error) {
	ok, err := s.repo.Delete(ctx, id, email)
	if err != nil {
		metrics.CommentWritesTotal.WithLabelValues("delete", "error").Inc()
		return false, err
	}
	if !ok {
		metrics.CommentWritesTotal.WithLabelValues("delete", "no_match").Inc()
		return false, nil
	}
	metrics.CommentWritesTotal.WithLabelValues("delete", "ok").Inc()
	return true, nil
}

// MostActiveCommenters serves the top-20 commenters report, preferring the
// cache when one is configured. Cache failures degrade to the aggregation
// rather than failing the report.
func (s *CommentService) MostActiveCommenters(ctx context.Context) ([]domain.Critic, error) {
	if s.cache != nil {
		critics, hit, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("report cache read failed, falling back to aggregation")
		} else if hit {
			metrics.ReportCacheTotal.WithLabelValues("hit").Inc()
			return critics, nil
		} else {
			metrics.ReportCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	start := time.Now()
	critics, err := s.repo.MostActiveCommenters(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("most active commenters aggregation failed")
		return nil, err
	}
	metrics.ReportDuration.Observe(time.Since(start).Seconds())

	if s.cache != nil {
		if err := s.cache.Set(ctx, critics); err != nil {
			s.logger.Warn().Err(err).Msg("report cache write failed")
		}
	}
	return critics, nil
}
