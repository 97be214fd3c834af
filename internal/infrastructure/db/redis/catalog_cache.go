package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tokoku/store-api/internal/core/domain"
)

const (
	catalogKey = "catalog:items"
	catalogTTL = 30 * time.Second
)

// CatalogCache is a Redis-backed read-through cache for the item catalog.
// Entries expire after catalogTTL and are dropped eagerly when an admin
// creates an item.
type CatalogCache struct {
	client *redis.Client
}

func NewCatalogCache(client *redis.Client) *CatalogCache {
	return &CatalogCache{client: client}
}

// Get returns the cached catalog, reporting a miss with ok=false. An entry
// that fails to decode is treated as a miss, not an error.
func (c *CatalogCache) Get(ctx context.Context) ([]domain.Item, bool, error) {
	raw, err := c.client.Get(ctx, catalogKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("catalog cache get: %w", err)
	}

	var items []domain.Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false, nil
	}
	return items, true, nil
}

func (c *CatalogCache) Set(ctx context.Context, items []domain.Item) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("catalog cache encode: %w", err)
	}
	if err := c.client.Set(ctx, catalogKey, raw, catalogTTL).Err(); err != nil {
		return fmt.Errorf("catalog cache set: %w", err)
	}
	return nil
}

func (c *CatalogCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, catalogKey).Err(); err != nil {
		return fmt.Errorf("catalog cache invalidate: %w", err)
	}
	return nil
}
