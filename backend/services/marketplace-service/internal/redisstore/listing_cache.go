package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"chargeshare/backend/services/marketplace-service/internal/models"
)

// ListingCache stores generated charger listings keyed by the query coordinate.
// Coordinates are rounded to three decimals (~110 m) so nearby queries share an
// entry. Generation is deterministic, so the cache only saves CPU and keeps the
// listing set stable while a client pans the map.
type ListingCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewListingCache returns redis-backed cache.
func NewListingCache(client *redis.Client, ttl time.Duration) *ListingCache {
	return &ListingCache{client: client, ttl: ttl}
}

func (c *ListingCache) key(lat, lng float64) string {
	return fmt.Sprintf("chargers:near:%.3f:%.3f", lat, lng)
}

// Save caches a listing set for a coordinate.
func (c *ListingCache) Save(ctx context.Context, lat, lng float64, chargers []models.Charger) error {
	data, err := json.Marshal(chargers)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(lat, lng), data, c.ttl).Err()
}

// Get returns the cached listing set, or redis.Nil when absent.
func (c *ListingCache) Get(ctx context.Context, lat, lng float64) ([]models.Charger, error) {
	result, err := c.client.Get(ctx, c.key(lat, lng)).Result()
	if err != nil {
		return nil, err
	}
	var chargers []models.Charger
	if err := json.Unmarshal([]byte(result), &chargers); err != nil {
		return nil, err
	}
	return chargers, nil
}
