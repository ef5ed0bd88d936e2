package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mflix/catalog-api/internal/core/domain"
)

const (
	reportKey        = "report:most_active_commenters"
	defaultReportTTL = 5 * time.Minute
)

// ReportCache memoizes the most-active-commenters report in Redis. The report
// is a derived aggregate, so serving a slightly stale copy is acceptable; the
// TTL bounds the staleness.
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReportCache wraps the given Redis client. A non-positive ttl falls back
// to 5 minutes.
func NewReportCache(client *redis.Client, ttl time.Duration) *ReportCache {
	if ttl <= 0 {
		ttl = defaultReportTTL
	}
	return &ReportCache{client: client, ttl: ttl}
}

// Get returns the cached report and whether it was present.
func (c *ReportCache) Get(ctx context.Context) ([]domain.Critic, bool, error) {
	raw, err := c.client.Get(ctx, reportKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("report cache get: %w", err)
	}

	var critics []domain.Critic
	if err := json.Unmarshal(raw, &critics); err != nil {
		return nil, false, fmt.Errorf("report cache decode: %w", err)
	}
	return critics, true, nil
}

// Set stores the report, expiring after the configured TTL.
func (c *ReportCache) Set(ctx context.Context, critics []domain.Critic) error {
	raw, err := json.Marshal(critics)
	if err != nil {
		return fmt.Errorf("report cache encode: %w", err)
	}
	return c.client.Set(ctx, reportKey, raw, c.ttl).Err()
}
