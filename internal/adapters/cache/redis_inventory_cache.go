package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"blood-donation-service/internal/domain"
	"blood-donation-service/internal/platform/obs"
)

const inventoryKey = "blood-donation:inventory:all"

type inventoryEntry struct {
	BloodType string `json:"bloodType"`
	Units     int    `json:"units"`
}

// Redis-backed cache for the full inventory listing.
// The listing is stored as a single JSON value with a TTL.
type RedisInventoryCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisInventoryCache(client *redis.Client, ttl time.Duration) *RedisInventoryCache {
	return &RedisInventoryCache{Client: client, TTL: ttl}
}

// Fetch the cached listing; ok is false on a miss.
func (c *RedisInventoryCache) GetInventory(ctx context.Context) (_ []domain.BloodInventory, _ bool, err error) {
	defer obs.Time(ctx, "inventory.cache.Get")(&err)

	if c.Client == nil {
		return nil, false, errors.New("inventory cache: client is nil")
	}

	raw, err := c.Client.Get(ctx, inventoryKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get inventory cache: %w", err)
	}

	var entries []inventoryEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, false, fmt.Errorf("get inventory cache: decode: %w", err)
	}

	items := make([]domain.BloodInventory, 0, len(entries))
	for _, e := range entries {
		items = append(items, domain.BloodInventory{BloodType: e.BloodType, Units: e.Units})
	}

	return items, true, nil
}

// Store the listing, replacing any previous value.
func (c *RedisInventoryCache) SetInventory(ctx context.Context, items []domain.BloodInventory) (err error) {
	defer obs.Time(ctx, "inventory.cache.Set")(&err)

	if c.Client == nil {
		return errors.New("inventory cache: client is nil")
	}

	entries := make([]inventoryEntry, 0, len(items))
	for _, it := range items {
		entries = append(entries, inventoryEntry{BloodType: it.BloodType, Units: it.Units})
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("set inventory cache: encode: %w", err)
	}

	if err := c.Client.Set(ctx, inventoryKey, raw, c.TTL).Err(); err != nil {
		return fmt.Errorf("set inventory cache: %w", err)
	}

	return nil
}

func (c *RedisInventoryCache) Invalidate(ctx context.Context) error {
	if c.Client == nil {
		return errors.New("inventory cache: client is nil")
	}

	if err := c.Client.Del(ctx, inventoryKey).Err(); err != nil {
		return fmt.Errorf("invalidate inventory cache: %w", err)
	}
	return nil
}

// NewRedisClient parses a redis:// URL and verifies the connection.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return client, nil
}
