package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// leaderboardTTL matches the report cache TTL so a period's ZSET and
// its aggregates go stale together.
const leaderboardTTL = 15 * time.Minute

// LeaderboardCache handles Redis ZSET operations for the per-period
// group leaderboard. Members are group IDs scored by their average
// evaluation percentage.
type LeaderboardCache interface {
	UpdateScore(ctx context.Context, periodKey, groupID string, average int) error
	GetTop(ctx context.Context, periodKey string, limit int) ([]LeaderboardEntry, error)
	GetRank(ctx context.Context, periodKey, groupID string) (int64, error)
	Clear(ctx context.Context, periodKey string) error
}

// LeaderboardEntry represents a single leaderboard entry
type LeaderboardEntry struct {
	GroupID string `json:"groupId"`
	Average int    `json:"average"`
	Rank    int    `json:"rank"`
}

type leaderboardCache struct {
	client *redis.Client
}

// NewLeaderboardCache creates a new leaderboard cache
func NewLeaderboardCache(client *redis.Client) LeaderboardCache {
	return &leaderboardCache{
		client: client,
	}
}

func (c *leaderboardCache) key(periodKey string) string {
	return fmt.Sprintf("eval:%s:lb", periodKey)
}

func (c *leaderboardCache) UpdateScore(ctx context.Context, periodKey, groupID string, average int) error {
	key := c.key(periodKey)
	if err := c.client.ZAdd(ctx, key, redis.Z{
		Score:  float64(average),
		Member: groupID,
	}).Err(); err != nil {
		return err
	}
	return c.client.Expire(ctx, key, leaderboardTTL).Err()
}

func (c *leaderboardCache) GetTop(ctx context.Context, periodKey string, limit int) ([]LeaderboardEntry, error) {
	results, err := c.client.ZRevRangeWithScores(ctx, c.key(periodKey), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, len(results))
	for i, z := range results {
		entries[i] = LeaderboardEntry{
			GroupID: z.Member.(string),
			Average: int(z.Score),
			Rank:    i + 1,
		}
	}
	return entries, nil
}

func (c *leaderboardCache) GetRank(ctx context.Context, periodKey, groupID string) (int64, error) {
	rank, err := c.client.ZRevRank(ctx, c.key(periodKey), groupID).Result()
	if err == redis.Nil {
		return -1, nil
	}
	return rank + 1, err // 1-indexed
}

func (c *leaderboardCache) Clear(ctx context.Context, periodKey string) error {
	return c.client.Del(ctx, c.key(periodKey)).Err()
}
