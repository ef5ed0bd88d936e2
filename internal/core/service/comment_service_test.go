package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/mflix/catalog-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubCommentRepo struct {
	comments map[string]*domain.Comment
	aggCalls int // number of MostActiveCommenters aggregations executed
}

func newStubCommentRepo() *stubCommentRepo {
	return &stubCommentRepo{comments: make(map[string]*domain.Comment)}
}

func cloneComment(c *domain.Comment) *domain.Comment {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

func (r *stubCommentRepo) Get(_ context.Context, id string) (*domain.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, domain.ErrCommentNotFound
	}
	return cloneComment(c), nil
}

func (r *stubCommentRepo) Add(_ context.Context, comment *domain.Comment) (*domain.Comment, error) {
	if comment == nil || comment.ID == "" {
		return nil, domain.NewInvalidOperation("comment objects need to have an id field set")
	}
	if _, exists := r.comments[comment.ID]; exists {
		return nil, domain.NewInvalidOperation("duplicate comment id %q", comment.ID)
	}
	r.comments[comment.ID] = cloneComment(comment)
	return cloneComment(comment), nil
}

// Update mirrors the real compound filter: both id and owner email must match.
func (r *stubCommentRepo) Update(_ context.Context, id, text, email string) (bool, error) {
	c, ok := r.comments[id]
	if !ok || c.Email != email {
		return false, nil
	}
	c.Text = text
	c.Date = time.Now().UTC()
	return true, nil
}

func (r *stubCommentRepo) Delete(_ context.Context, id, email string) (bool, error) {
	c, ok := r.comments[id]
	if !ok || c.Email != email {
		return false, nil
	}
	delete(r.comments, id)
	return true, nil
}

func (r *stubCommentRepo) MostActiveCommenters(_ context.Context) ([]domain.Critic, error) {
	r.aggCalls++
	counts := make(map[string]int)
	for _, c := range r.comments {
		counts[c.Email]++
	}
	critics := make([]domain.Critic, 0, len(counts))
	for email, n := range counts {
		critics = append(critics, domain.Critic{ID: email, Count: n})
	}
	sort.Slice(critics, func(i, j int) bool { return critics[i].Count > critics[j].Count })
	if len(critics) > 20 {
		critics = critics[:20]
	}
	return critics, nil
}

type stubReportCache struct {
	data []domain.Critic
	hit  bool
	sets int
}

func (c *stubReportCache) Get(_ context.Context) ([]domain.Critic, bool, error) {
	return c.data, c.hit, nil
}

func (c *stubReportCache) Set(_ context.Context, critics []domain.Critic) error {
	c.data = critics
	c.sets++
	return nil
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestCommentService_AddComment_AssignsIDAndDate(t *testing.T) {
	repo := newStubCommentRepo()
	svc := NewCommentService(repo, nil, zerolog.Nop())

	c, err := svc.AddComment(context.Background(), "a@x.com", "Alice", "m1", "hi")
	if err != nil {
		t.Fatalf("AddComment returned error: %v", err)
	}
	if c.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if c.Date.IsZero() {
		t.Fatalf("expected date to be set")
	}

	got, err := svc.GetComment(context.Background(), c.ID)
	if err != nil {
		t.Fatalf("GetComment returned error: %v", err)
	}
	if got.Text != "hi" || got.Email != "a@x.com" {
		t.Fatalf("unexpected stored comment: %+v", got)
	}
}

func TestCommentService_GetComment_NotFound(t *testing.T) {
	svc := NewCommentService(newStubCommentRepo(), nil, zerolog.Nop())

	if _, err := svc.GetComment(context.Background(), "missing"); err != domain.ErrCommentNotFound {
		t.Fatalf("expected ErrCommentNotFound, got %v", err)
	}
}

func TestCommentService_UpdateComment_Ownership(t *testing.T) {
	repo := newStubCommentRepo()
	svc := NewCommentService(repo, nil, zerolog.Nop())

	c, err := svc.AddComment(context.Background(), "a@x.com", "Alice", "m1", "hi")
	if err != nil {
		t.Fatalf("AddComment: %v", err)
	}

	// Wrong owner: filter matches nothing, text stays untouched.
	ok, err := svc.UpdateComment(context.Background(), c.ID, "bye", "b@x.com")
	if err != nil {
		t.Fatalf("UpdateComment returned error: %v", err)
	}
	if ok {
		t.Fatalf("expected update to report no match for wrong owner")
	}
	got, _ := svc.GetComment(context.Background(), c.ID)
	if got.Text != "hi" {
		t.Fatalf("text changed despite wrong owner: %q", got.Text)
	}

	// Correct owner succeeds.
	ok, err = svc.UpdateComment(context.Background(), c.ID, "bye", "a@x.com")
	if err != nil {
		t.Fatalf("UpdateComment returned error: %v", err)
	}
	if !ok {
		t.Fatalf("expected update to succeed for owner")
	}
	got, _ = svc.GetComment(context.Background(), c.ID)
	if got.Text != "bye" {
		t.Fatalf("expected text %q, got %q", "bye", got.Text)
	}
}

func TestCommentService_DeleteComment_TrueThenFalse(t *testing.T) {
	repo := newStubCommentRepo()
	svc := NewCommentService(repo, nil, zerolog.Nop())

	c, err := svc.AddComment(context.Background(), "a@x.com", "Alice", "m1", "hi")
	if err != nil {
		t.Fatalf("AddComment: %v", err)
	}

	if ok, err := svc.DeleteComment(context.Background(), c.ID, "b@x.com"); err != nil || ok {
		t.Fatalf("expected no-op delete for wrong owner, got ok=%v err=%v", ok, err)
	}

	if ok, err := svc.DeleteComment(context.Background(), c.ID, "a@x.com"); err != nil || !ok {
		t.Fatalf("expected first delete to succeed, got ok=%v err=%v", ok, err)
	}
	if ok, err := svc.DeleteComment(context.Background(), c.ID, "a@x.com"); err != nil || ok {
		t.Fatalf("expected second delete to report false, got ok=%v err=%v", ok, err)
	}
}

func TestCommentService_MostActiveCommenters_LimitAndOrder(t *testing.T) {
	repo := newStubCommentRepo()
	svc := NewCommentService(repo, nil, zerolog.Nop())

	// 25 commenters, commenter i authors i+1 comments.
	for i := 0; i < 25; i++ {
		email := string(rune('a'+i%26)) + "@x.com"
		for j := 0; j <= i; j++ {
			if _, err := svc.AddComment(context.Background(), email, "n", "m1", "text"); err != nil {
				t.Fatalf("AddComment: %v", err)
			}
		}
	}

	critics, err := svc.MostActiveCommenters(context.Background())
	if err != nil {
		t.Fatalf("MostActiveCommenters returned error: %v", err)
	}
	if len(critics) > 20 {
		t.Fatalf("expected at most 20 rows, got %d", len(critics))
	}
	for i := 1; i < len(critics); i++ {
		if critics[i].Count > critics[i-1].Count {
			t.Fatalf("rows not sorted by count descending: %+v", critics)
		}
	}
}

func TestCommentService_MostActiveCommenters_CacheHit(t *testing.T) {
	repo := newStubCommentRepo()
	cache := &stubReportCache{
		data: []domain.Critic{{ID: "a@x.com", Count: 3}},
		hit:  true,
	}
	svc := NewCommentService(repo, cache, zerolog.Nop())

	critics, err := svc.MostActiveCommenters(context.Background())
	if err != nil {
		t.Fatalf("MostActiveCommenters returned error: %v", err)
	}
	if len(critics) != 1 || critics[0].ID != "a@x.com" {
		t.Fatalf("expected cached report, got %+v", critics)
	}
	if repo.aggCalls != 0 {
		t.Fatalf("aggregation ran despite cache hit")
	}
}

func TestCommentService_MostActiveCommenters_CacheMissPopulates(t *testing.T) {
	repo := newStubCommentRepo()
	cache := &stubReportCache{}
	svc := NewCommentService(repo, cache, zerolog.Nop())

	if _, err := svc.AddComment(context.Background(), "a@x.com", "Alice", "m1", "hi"); err != nil {
		t.Fatalf("AddComment: %v", err)
	}

	if _, err := svc.MostActiveCommenters(context.Background()); err != nil {
		t.Fatalf("MostActiveCommenters returned error: %v", err)
	}
	if repo.aggCalls != 1 {
		t.Fatalf("expected one aggregation, got %d", repo.aggCalls)
	}
	if cache.sets != 1 {
		t.Fatalf("expected report to be cached, sets=%d", cache.sets)
	}
}
