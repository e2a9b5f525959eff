package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache is an optional Redis-backed read cache for listing queries. A nil
// *Cache is valid and turns every operation into a no-op, so handlers never
// have to branch on whether caching is configured.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(url string, ttl time.Duration) (*Cache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Cache{rdb: rdb, ttl: ttl}, nil
}

// GetJSON loads a cached value into dest, reporting whether it was present.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if c == nil {
		return false, nil
	}

	raw, err := c.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Cache) SetJSON(ctx context.Context, key string, value any) error {
	if c == nil {
		return nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, raw, c.ttl).Err()
}

// InvalidatePrefix drops every cached entry under a listing prefix. Called
// on writes so readers never see a stale listing longer than one round trip.
func (c *Cache) InvalidatePrefix(ctx context.Context, prefix string) error {
	if c == nil {
		return nil
	}

	keys, err := c.rdb.Keys(ctx, prefix+"*").Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}

const (
	CropListPrefix     = "crops:list:"
	ResourceListPrefix = "resources:list:"
)

// ListKey builds a deterministic cache key from a filter set by sorting the
// filter names, so equivalent queries hit the same entry.
func ListKey(prefix string, filters map[string]string) string {
	names := make([]string, 0, len(filters))
	for name, value := range filters {
		if value != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(prefix)
	for i, name := range names {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(filters[name])
	}
	return b.String()
}
