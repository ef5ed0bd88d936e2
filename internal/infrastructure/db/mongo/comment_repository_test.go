package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mflix/catalog-api/internal/core/domain"
)

// testDB returns a database handle pointing at a non-routable address. The
// driver connects lazily, so validation paths that reject before issuing any
// operation can be exercised without a running server.
func testDB(t *testing.T) *mongo.Database {
	t.Helper()
	opts := options.Client().
		ApplyURI("mongodb://127.0.0.1:9").
		SetServerSelectionTimeout(50 * time.Millisecond)
	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
	return client.Database("catalog_test")
}

func TestCommentRepository_Add_RequiresID(t *testing.T) {
	repo := NewCommentRepository(testDB(t), zerolog.Nop(), time.Second)

	if _, err := repo.Add(context.Background(), &domain.Comment{Email: "a@x.com", Text: "hi"}); !domain.IsInvalidOperation(err) {
		t.Fatalf("expected InvalidOperationError for empty id, got %v", err)
	}
	if _, err := repo.Add(context.Background(), nil); !domain.IsInvalidOperation(err) {
		t.Fatalf("expected InvalidOperationError for nil comment, got %v", err)
	}
}
