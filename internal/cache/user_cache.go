// Package cache holds the write-through display-name cache. The gateway
// ingestion path writes records as member chunks arrive; rendering and
// response formatting read them through an external collaborator. There is no
// TTL and no eviction: last write wins.
package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Fripe070/experienced/internal/common"
	"github.com/Fripe070/experienced/internal/metrics"
	"github.com/Fripe070/experienced/internal/models/dtos"
)

const userKeyPrefix = "cache-user-"

// UserCache writes display records to Redis keyed by user ID.
type UserCache struct {
	client  *redis.Client
	metrics *metrics.MetricsRegistry
}

func NewUserCache(client *redis.Client, reg *metrics.MetricsRegistry) *UserCache {
	return &UserCache{client: client, metrics: reg}
}

// UserKey builds the cache key for a user ID.
func UserKey(id uint64) string {
	return userKeyPrefix + common.FormatID(id)
}

// Set stores one display record, unconditionally overwriting.
func (c *UserCache) Set(ctx context.Context, info dtos.MemberDisplayInfo) error {
	data, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal display record: %w", err)
	}
	if err := c.client.Set(ctx, UserKey(info.ID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write display record: %w", err)
	}
	c.metrics.CacheWritesTotal.Inc()
	return nil
}

// SetBatch stores a member chunk in one round trip.
func (c *UserCache) SetBatch(ctx context.Context, infos []dtos.MemberDisplayInfo) error {
	if len(infos) == 0 {
		return nil
	}
	pairs := make([]interface{}, 0, len(infos)*2)
	for _, info := range infos {
		data, err := json.Marshal(info)
		if err != nil {
			return fmt.Errorf("failed to marshal display record: %w", err)
		}
		pairs = append(pairs, UserKey(info.ID), data)
	}
	if err := c.client.MSet(ctx, pairs...).Err(); err != nil {
		return fmt.Errorf("failed to write display records: %w", err)
	}
	c.metrics.CacheWritesTotal.Add(float64(len(infos)))
	return nil
}
