// Package cache stores dropdown option lists between requests. Option lists
// change only when the source tables are reloaded, so a short TTL is enough.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"dsld/internal/platform/metrics"
	"dsld/pkg/platform/sentinel"
	"dsld/pkg/requestcontext"
)

// Cache is a JSON value cache keyed by string.
type Cache interface {
	// Get decodes the cached value into dst or returns sentinel.ErrCacheMiss.
	Get(ctx context.Context, key string, dst any) error
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	// Flush drops every entry and reports how many were removed.
	Flush(ctx context.Context) (int, error)
}

// RedisCache stores entries in Redis under a key prefix.
type RedisCache struct {
	client *redis.Client
	prefix string
}

// NewRedis constructs a Redis-backed cache.
func NewRedis(client *redis.Client, prefix string) *RedisCache {
	return &RedisCache{client: client, prefix: prefix}
}

func (c *RedisCache) Get(ctx context.Context, key string, dst any) error {
	raw, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return sentinel.ErrCacheMiss
	}
	if err != nil {
		return fmt.Errorf("get cache entry: %w", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode cache entry: %w", err)
	}
	return nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}
	if err := c.client.Set(ctx, c.prefix+key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("set cache entry: %w", err)
	}
	return nil
}

// Flush scans the prefix and deletes in batches.
func (c *RedisCache) Flush(ctx context.Context) (int, error) {
	var (
		cursor  uint64
		removed int
	)
	for {
		keys, next, err := c.client.Scan(ctx, cursor, c.prefix+"*", 200).Result()
		if err != nil {
			return removed, fmt.Errorf("scan cache keys: %w", err)
		}
		if len(keys) > 0 {
			n, err := c.client.Del(ctx, keys...).Result()
			if err != nil {
				return removed, fmt.Errorf("delete cache keys: %w", err)
			}
			removed += int(n)
		}
		cursor = next
		if cursor == 0 {
			return removed, nil
		}
	}
}

type memoryEntry struct {
	raw       []byte
	expiresAt time.Time
}

// MemoryCache is the in-process fallback used when Redis is not configured.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

// NewMemory constructs an empty in-process cache.
func NewMemory() *MemoryCache {
	return &MemoryCache{entries: make(map[string]memoryEntry)}
}

func (c *MemoryCache) Get(ctx context.Context, key string, dst any) error {
	c.mu.Lock()
	entry, ok := c.entries[key]
	if ok && requestcontext.Now(ctx).After(entry.expiresAt) {
		delete(c.entries, key)
		ok = false
	}
	c.mu.Unlock()
	if !ok {
		return sentinel.ErrCacheMiss
	}
	if err := json.Unmarshal(entry.raw, dst); err != nil {
		return fmt.Errorf("decode cache entry: %w", err)
	}
	return nil
}

func (c *MemoryCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}
	c.mu.Lock()
	c.entries[key] = memoryEntry{raw: raw, expiresAt: requestcontext.Now(ctx).Add(ttl)}
	c.mu.Unlock()
	return nil
}

func (c *MemoryCache) Flush(_ context.Context) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.entries)
	c.entries = make(map[string]memoryEntry)
	return n, nil
}

// Key joins parts with ":" after query-escaping each one, so a ":" inside a
// user-supplied name cannot make two selections share an entry.
func Key(parts ...string) string {
	escaped := make([]string, len(parts))
	for i, p := range parts {
		escaped[i] = url.QueryEscape(p)
	}
	return strings.Join(escaped, ":")
}

// Options bundles what Remember needs besides the loader.
type Options struct {
	Cache   Cache
	TTL     time.Duration
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// Remember returns the cached value for key, or calls load and caches its
// result. Loader errors are returned and never cached. Cache failures are
// logged and bypassed.
func Remember[T any](ctx context.Context, o Options, key string, load func(context.Context) (T, error)) (T, error) {
	if o.Cache == nil || o.TTL <= 0 {
		return load(ctx)
	}

	var cached T
	err := o.Cache.Get(ctx, key, &cached)
	switch {
	case err == nil:
		o.Metrics.IncrementCache("hit")
		return cached, nil
	case errors.Is(err, sentinel.ErrCacheMiss):
		o.Metrics.IncrementCache("miss")
	default:
		o.Metrics.IncrementCache("error")
		o.logWarn(ctx, "option cache read failed", key, err)
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}
	if err := o.Cache.Set(ctx, key, value, o.TTL); err != nil {
		o.logWarn(ctx, "option cache write failed", key, err)
	}
	return value, nil
}

func (o Options) logWarn(ctx context.Context, msg, key string, err error) {
	if o.Logger == nil {
		return
	}
	o.Logger.WarnContext(ctx, msg,
		"key", key,
		"error", err,
		"request_id", requestcontext.RequestID(ctx),
	)
}
