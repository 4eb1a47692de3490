package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/maruthihotels/roombooking/config"
)

// RedisCache caches availability maps per query window. Entries expire on a
// short TTL instead of being invalidated: a stale read only affects the
// advisory availability endpoint, booking always recomputes its gate.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(cfg config.RedisConfig, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		ttl:    ttl,
	}
}

func (c *RedisCache) GetAvailability(ctx context.Context, checkin, checkout string) (map[string]int, error) {
	data, err := c.client.Get(ctx, availabilityKey(checkin, checkout)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var remaining map[string]int
	if err := json.Unmarshal(data, &remaining); err != nil {
		return nil, err
	}
	return remaining, nil
}

func (c *RedisCache) SetAvailability(ctx context.Context, checkin, checkout string, remaining map[string]int) error {
	payload, err := json.Marshal(remaining)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, availabilityKey(checkin, checkout), payload, c.ttl).Err()
}

func availabilityKey(checkin, checkout string) string {
	return fmt.Sprintf("cache:availability:%s:%s", checkin, checkout)
}
