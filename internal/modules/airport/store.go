// README: Suggestion cache backed by Redis string keys with TTL.
package airport

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const suggestKeyPrefix = "airport:suggest:%s"

// Cache stores sanitized suggestions per normalized query.
type Cache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{redis: client, ttl: ttl}
}

// Get returns the cached records for key and whether there was a hit.
func (c *Cache) Get(ctx context.Context, key string) ([]Record, bool, error) {
	val, err := c.redis.Get(ctx, suggestKey(key)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var records []Record
	if err := json.Unmarshal(val, &records); err != nil {
		return nil, false, fmt.Errorf("decoding cached suggestions for %q: %w", key, err)
	}
	return records, true, nil
}

// Put replaces the cached records for key.
func (c *Cache) Put(ctx context.Context, key string, records []Record) error {
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding suggestions for %q: %w", key, err)
	}
	return c.redis.Set(ctx, suggestKey(key), payload, c.ttl).Err()
}

func suggestKey(query string) string {
	return fmt.Sprintf(suggestKeyPrefix, query)
}
