package ports

import (
	"context"

	"github.com/mflix/catalog-api/internal/core/domain"
)

// CommentRepository defines persistence operations for movie comments.
//
// Ownership is enforced at the filter level: Update and Delete match both the
// comment id and the owner email in a single atomic operation, so a caller
// with the wrong email simply matches nothing.
type CommentRepository interface {
	// Get retrieves a comment by id. Returns domain.ErrCommentNotFound when
	// no document matches; absence is not a failure.
	Get(ctx context.Context, id string) (*domain.Comment, error)
	// Add inserts a new comment. The comment must carry a non-empty ID;
	// violations and write conflicts surface as *domain.InvalidOperationError.
	Add(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	// Update sets new text (and refreshes the date) on the comment matching
	// both id and owner email. Returns true when at least one document
	// matched the filter.
	Update(ctx context.Context, id, text, email string) (bool, error)
	// Delete removes the comment matching both id and owner email. Returns
	// true only when exactly one document was deleted.
	Delete(ctx context.Context, id, email string) (bool, error)
	// MostActiveCommenters returns up to 20 (email, comment count) rows,
	// highest count first, read under majority read concern.
	MostActiveCommenters(ctx context.Context) ([]domain.Critic, error)
}
