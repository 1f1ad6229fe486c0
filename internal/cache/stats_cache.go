package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"thrgacha/internal/model"
)

// StatsCache holds short-lived room statistics snapshots so the dashboard
// does not recompute aggregations on every poll. Snapshots may lag
// concurrent writes; reporting is allowed to be approximate.
type StatsCache interface {
	GetSnapshot(ctx context.Context, roomID string) (*model.RoomStatistics, error)
	SetSnapshot(ctx context.Context, roomID string, stats *model.RoomStatistics) error
	Invalidate(ctx context.Context, roomID string) error
}

type statsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache creates a stats snapshot cache with the given TTL.
func NewStatsCache(client *redis.Client, ttl time.Duration) StatsCache {
	if ttl <= 0 {
		ttl = 15 * time.Second
	}
	return &statsCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *statsCache) key(roomID string) string {
	return fmt.Sprintf("room:%s:stats", roomID)
}

func (c *statsCache) GetSnapshot(ctx context.Context, roomID string) (*model.RoomStatistics, error) {
	data, err := c.client.Get(ctx, c.key(roomID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var stats model.RoomStatistics
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *statsCache) SetSnapshot(ctx context.Context, roomID string, stats *model.RoomStatistics) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(roomID), data, c.ttl).Err()
}

func (c *statsCache) Invalidate(ctx context.Context, roomID string) error {
	return c.client.Del(ctx, c.key(roomID)).Err()
}
