package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// EarningsCache handles Redis ZSET operations for the per-room earnings
// leaderboard. Mongo stays the source of truth; this is a display cache
// updated on each recorded spin.
type EarningsCache interface {
	AddEarnings(ctx context.Context, roomID, participantID string, amount float64) error
	GetTop(ctx context.Context, roomID string, limit int) ([]EarningsEntry, error)
	GetRank(ctx context.Context, roomID, participantID string) (int64, error)
}

// EarningsEntry is a single leaderboard row.
type EarningsEntry struct {
	ParticipantID string  `json:"participantId"`
	Name          string  `json:"name,omitempty"`
	Earnings      float64 `json:"earnings"`
	Rank          int     `json:"rank"`
}

type earningsCache struct {
	client *redis.Client
}

// NewEarningsCache creates a new earnings leaderboard cache.
func NewEarningsCache(client *redis.Client) EarningsCache {
	return &earningsCache{
		client: client,
	}
}

func (c *earningsCache) key(roomID string) string {
	return fmt.Sprintf("room:%s:earnings", roomID)
}

func (c *earningsCache) AddEarnings(ctx context.Context, roomID, participantID string, amount float64) error {
	return c.client.ZIncrBy(ctx, c.key(roomID), amount, participantID).Err()
}

func (c *earningsCache) GetTop(ctx context.Context, roomID string, limit int) ([]EarningsEntry, error) {
	results, err := c.client.ZRevRangeWithScores(ctx, c.key(roomID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]EarningsEntry, len(results))
	for i, z := range results {
		entries[i] = EarningsEntry{
			ParticipantID: z.Member.(string),
			Earnings:      z.Score,
			Rank:          i + 1,
		}
	}
	return entries, nil
}

func (c *earningsCache) GetRank(ctx context.Context, roomID, participantID string) (int64, error) {
	rank, err := c.client.ZRevRank(ctx, c.key(roomID), participantID).Result()
	if err == redis.Nil {
		return -1, nil
	}
	return rank + 1, err // 1-indexed
}
