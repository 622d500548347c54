package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/wearcast/wearcast/internal/model"
)

// feedKey is the Redis key holding the cached public item feed.
const feedKey = "items:feed"

// DefaultFeedTTL is the TTL for the cached item feed.
const DefaultFeedTTL = 30 * time.Second

// ErrCacheMiss indicates the requested entry is not in the cache.
var ErrCacheMiss = errors.New("cache miss")

// GetFeed retrieves the cached item feed.
// Returns ErrCacheMiss if not found.
func (c *Cache) GetFeed(ctx context.Context) ([]*model.Item, error) {
	data, err := c.client.Get(ctx, feedKey).Bytes()
	if err != nil {
		return nil, ErrCacheMiss
	}

	var items []*model.Item
	if err := json.Unmarshal(data, &items); err != nil {
		// Corrupted cache entry - treat as miss
		return nil, ErrCacheMiss
	}

	return items, nil
}

// SetFeed stores the item feed with the given TTL.
func (c *Cache) SetFeed(ctx context.Context, items []*model.Item, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultFeedTTL
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal feed: %w", err)
	}

	if err := c.client.Set(ctx, feedKey, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache feed: %w", err)
	}

	return nil
}

// InvalidateFeed drops the cached feed.
// Called after any item mutation so readers never see stale ownership or
// like data for longer than one round trip.
func (c *Cache) InvalidateFeed(ctx context.Context) error {
	if err := c.client.Del(ctx, feedKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate feed: %w", err)
	}
	return nil
}
