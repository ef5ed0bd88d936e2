package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"

	"github.com/mflix/catalog-api/internal/core/domain"
)

const commentCollection = "comments"

// mostActiveLimit caps the commenters report at the top 20 rows.
const mostActiveLimit = 20

// CommentRepository implements ports.CommentRepository over the comments
// collection. Ownership-scoped mutations are issued as single filtered
// operations so correctness never depends on a read-then-write sequence.
type CommentRepository struct {
	coll *mongo.Collection
	// critics reads the same collection under majority read concern; the
	// report trades latency for only seeing majority-acknowledged writes.
	critics *mongo.Collection
	timeout time.Duration
	log     zerolog.Logger
}

func NewCommentRepository(db *mongo.Database, log zerolog.Logger, timeout time.Duration) *CommentRepository {
	return &CommentRepository{
		coll: db.Collection(commentCollection),
		critics: db.Collection(commentCollection,
			options.Collection().SetReadConcern(readconcern.Majority())),
		timeout: opTimeout(timeout),
		log:     log,
	}
}

// Get retrieves a comment by id. Absence is reported as
// domain.ErrCommentNotFound, not treated as a failure.
func (r *CommentRepository) Get(ctx context.Context, id string) (*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var c domain.Comment
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, fmt.Errorf("find comment: %w", err)
	}
	return &c, nil
}

// Add inserts a new comment. The id must be set by the caller; empty ids and
// write conflicts are rejected as invalid operations.
func (r *CommentRepository) Add(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	if comment == nil || comment.ID == "" {
		return nil, domain.NewInvalidOperation("comment objects need to have an id field set")
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, comment); err != nil {
		return nil, domain.NewInvalidOperation("error occurred while adding comment %q: %v", comment.ID, err)
	}
	return comment, nil
}

// Update sets new text and refreshes the date on the comment matching both id
// and owner email, as one atomic filtered update. Returns true when the
// filter matched, even if the stored text was already equal.
func (r *CommentRepository) Update(ctx context.Context, id, text, email string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	filter := bson.M{"_id": id, "email": email}
	update := bson.M{"$set": bson.M{"text": text, "date": time.Now().UTC()}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, domain.NewInvalidOperation("error occurred while updating comment %q: %v", id, err)
	}

	if res.MatchedCount > 0 {
		if res.ModifiedCount != 1 {
			r.log.Warn().Str("comment_id", id).Msg("comment text was not updated, is it the same text?")
		}
		return true, nil
	}

	r.log.Error().
		Str("comment_id", id).
		Str("email", email).
		Msg("could not update comment, make sure it is owned by the caller")
	return false, nil
}

// Delete removes the comment matching both id and owner email. Returns true
// only when exactly one document was deleted.
func (r *CommentRepository) Delete(ctx context.Context, id, email string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id, "email": email})
	if err != nil {
		return false, domain.NewInvalidOperation("error deleting comment %q: %v", id, err)
	}

	if res.DeletedCount != 1 {
		r.log.Warn().
			Str("comment_id", id).
			Str("email", email).
			Msg("comment not deleted, caller does not own it or it was already deleted")
		return false, nil
	}
	return true, nil
}

// MostActiveCommenters groups comments by owner email, sorts by count
// descending and returns the top rows. Runs against the majority read-concern
// handle so the report only reflects majority-acknowledged data.
func (r *CommentRepository) MostActiveCommenters(ctx context.Context) ([]domain.Critic, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$sortByCount", Value: "$email"}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
		bson.D{{Key: "$limit", Value: mostActiveLimit}},
	}

	cur, err := r.critics.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate most active commenters: %w", err)
	}
	defer cur.Close(ctx)

	var critics []domain.Critic
	if err := cur.All(ctx, &critics); err != nil {
		return nil, fmt.Errorf("decode most active commenters: %w", err)
	}
	return critics, nil
}

// EnsureIndexes creates the indexes the comments collection relies on.
func (r *CommentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "movie_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
