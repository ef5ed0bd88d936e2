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
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	"github.com/mflix/catalog-api/internal/core/domain"
)

const (
	userCollection    = "users"
	sessionCollection = "sessions"
)

// UserRepository implements ports.UserRepository over the users and sessions
// collections. Sessions are keyed by the user email (user_id field); the
// upsert filter plus a unique index keep one session per user.
type UserRepository struct {
	users    *mongo.Collection
	sessions *mongo.Collection
	timeout  time.Duration
	log      zerolog.Logger
}

func NewUserRepository(db *mongo.Database, log zerolog.Logger, timeout time.Duration) *UserRepository {
	return &UserRepository{
		// Majority write concern is pinned on the collection handle so user
		// writes keep their durability guarantee regardless of client defaults.
		users: db.Collection(userCollection,
			options.Collection().SetWriteConcern(writeconcern.Majority())),
		sessions: db.Collection(sessionCollection),
		timeout:  opTimeout(timeout),
		log:      log,
	}
}

// AddUser inserts the user document under majority write concern; a nil
// error means the write was majority-acknowledged. Duplicate emails are
// rejected deterministically via the unique index.
func (r *UserRepository) AddUser(ctx context.Context, user *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if _, err := r.users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetUser returns the user matching email, or domain.ErrUserNotFound.
func (r *UserRepository) GetUser(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var u domain.User
	if err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

// DeleteUser clears the user's sessions first and only then removes the user
// document; if the session delete fails the user document is left untouched.
// The two deletes are not transactional — sessions-first minimizes the chance
// of orphaned sessions if the process dies in between.
func (r *UserRepository) DeleteUser(ctx context.Context, email string) error {
	if err := r.DeleteSessions(ctx, email); err != nil {
		return fmt.Errorf("delete user sessions: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.users.DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount < 1 {
		r.log.Warn().Str("email", email).Msg("user not found on delete, concurrent operation?")
	}
	return nil
}

// UpdatePreferences replaces the whole preferences value for the matching
// user. A nil mapping is rejected before any database call.
func (r *UserRepository) UpdatePreferences(ctx context.Context, email string, preferences map[string]any) error {
	if preferences == nil {
		return domain.NewInvalidOperation("user preferences cannot be set to null")
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"preferences": preferences}}
	res, err := r.users.UpdateOne(ctx, bson.M{"email": email}, update)
	if err != nil {
		return domain.NewInvalidOperation("error occurred while updating preferences for %q: %v", email, err)
	}
	if res.ModifiedCount < 1 {
		r.log.Warn().Str("email", email).Msg("preferences not updated, re-writing the same value?")
	}
	return nil
}

// CreateSession upserts the session document for userID, setting the token.
// The upsert-by-filter guarantees a single session per user.
func (r *UserRepository) CreateSession(ctx context.Context, userID, jwt string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	filter := bson.M{"user_id": userID}
	update := bson.M{"$set": bson.M{"jwt": jwt}}
	opts := options.Update().SetUpsert(true)

	if _, err := r.sessions.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("upsert session: %w", err)
	}
	return nil
}

// GetSession returns the session for userID, or domain.ErrSessionNotFound.
func (r *UserRepository) GetSession(ctx context.Context, userID string) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var s domain.Session
	if err := r.sessions.FindOne(ctx, bson.M{"user_id": userID}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("find session: %w", err)
	}
	return &s, nil
}

// DeleteSessions removes the session for userID. A missing session is logged
// at warn level and is not an error.
func (r *UserRepository) DeleteSessions(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.sessions.DeleteOne(ctx, bson.M{"user_id": userID})
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if res.DeletedCount < 1 {
		r.log.Warn().Str("user_id", userID).Msg("user could not be found in sessions collection")
	}
	return nil
}

// EnsureIndexes creates the unique indexes that make the duplicate-user and
// single-session contracts deterministic.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)

	if _, err := r.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: unique,
	}); err != nil {
		return fmt.Errorf("create users index: %w", err)
	}

	if _, err := r.sessions.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: unique,
	}); err != nil {
		return fmt.Errorf("create sessions index: %w", err)
	}
	return nil
}
