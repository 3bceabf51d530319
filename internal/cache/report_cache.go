package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"ternakku/internal/model"
)

// ReportCache holds computed group aggregates so a dashboard refresh
// doesn't re-evaluate the whole collection. Entries expire on their own
// and get invalidated eagerly when a submission arrives for the period.
type ReportCache interface {
	GetAggregates(ctx context.Context, periodKey string) ([]model.GroupAggregate, error)
	SetAggregates(ctx context.Context, periodKey string, groups []model.GroupAggregate) error
	Invalidate(ctx context.Context, periodKey string) error
}

type reportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReportCache creates a new report cache
func NewReportCache(client *redis.Client) ReportCache {
	return &reportCache{
		client: client,
		ttl:    15 * time.Minute,
	}
}

func (c *reportCache) key(periodKey string) string {
	return fmt.Sprintf("eval:%s:aggregates", periodKey)
}

// GetAggregates returns nil with no error on a cache miss.
func (c *reportCache) GetAggregates(ctx context.Context, periodKey string) ([]model.GroupAggregate, error) {
	data, err := c.client.Get(ctx, c.key(periodKey)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var groups []model.GroupAggregate
	if err := json.Unmarshal([]byte(data), &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (c *reportCache) SetAggregates(ctx context.Context, periodKey string, groups []model.GroupAggregate) error {
	data, err := json.Marshal(groups)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(periodKey), data, c.ttl).Err()
}

func (c *reportCache) Invalidate(ctx context.Context, periodKey string) error {
	return c.client.Del(ctx, c.key(periodKey)).Err()
}
