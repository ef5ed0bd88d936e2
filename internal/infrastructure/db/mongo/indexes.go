package mongo

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates every index the repositories rely on. Called once at
// startup; the unique indexes are what make the duplicate-user and
// single-session contracts deterministic rather than best-effort.
func EnsureIndexes(ctx context.Context, db *mongo.Database, log zerolog.Logger, timeout time.Duration) error {
	if err := NewCommentRepository(db, log, timeout).EnsureIndexes(ctx); err != nil {
		return err
	}
	return NewUserRepository(db, log, timeout).EnsureIndexes(ctx)
}
