package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"shipquote/models"

	"github.com/go-redis/redis/v8"
)

// QuoteCache stores badge-assigned quote sets keyed by request fingerprint.
// TTL enforcement happens in the aggregator by comparing CreatedAt; the store
// only has to hold the snapshot.
type QuoteCache interface {
	Get(ctx context.Context, fingerprint string) (*models.CachedQuoteSet, error)
	Put(ctx context.Context, fingerprint string, quotes []models.Quote, createdAt time.Time) error
}

// Fingerprint normalizes the request fields that determine a price into a
// cache key. Pickup date is deliberately excluded: price and transit window
// do not depend on the exact pickup day.
func Fingerprint(req models.QuoteRequest) string {
	payload := fmt.Sprintf("%s|%s|%.3f|%t",
		strings.ToLower(strings.TrimSpace(req.Origin)),
		strings.ToLower(strings.TrimSpace(req.Destination)),
		req.WeightKg,
		req.Fragile,
	)
	return fmt.Sprintf("quotes:%x", payload)
}

// RedisQuoteCache backs the fingerprint cache with Redis. Entries are written
// with a Redis expiry as garbage collection only; freshness is still judged
// against CreatedAt at read time.
type RedisQuoteCache struct {
	client    *redis.Client
	retainFor time.Duration
}

func NewRedisQuoteCache(client *redis.Client, retainFor time.Duration) *RedisQuoteCache {
	return &RedisQuoteCache{client: client, retainFor: retainFor}
}

func (c *RedisQuoteCache) Get(ctx context.Context, fingerprint string) (*models.CachedQuoteSet, error) {
	data, err := c.client.Get(ctx, fingerprint).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var set models.CachedQuoteSet
	if err := json.Unmarshal([]byte(data), &set); err != nil {
		return nil, fmt.Errorf("corrupt cached quote set: %w", err)
	}
	return &set, nil
}

func (c *RedisQuoteCache) Put(ctx context.Context, fingerprint string, quotes []models.Quote, createdAt time.Time) error {
	set := models.CachedQuoteSet{Quotes: quotes, CreatedAt: createdAt}
	data, err := json.Marshal(set)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, fingerprint, data, c.retainFor).Err()
}

// MemoryQuoteCache is a mutex-guarded in-process cache, used in tests and as
// a fallback when no Redis is configured.
type MemoryQuoteCache struct {
	mu      sync.RWMutex
	entries map[string]models.CachedQuoteSet
}

func NewMemoryQuoteCache() *MemoryQuoteCache {
	return &MemoryQuoteCache{entries: make(map[string]models.CachedQuoteSet)}
}

func (c *MemoryQuoteCache) Get(ctx context.Context, fingerprint string) (*models.CachedQuoteSet, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	set, ok := c.entries[fingerprint]
	if !ok {
		return nil, nil
	}
	// Copy so callers never alias the stored snapshot.
	out := models.CachedQuoteSet{
		Quotes:    append([]models.Quote(nil), set.Quotes...),
		CreatedAt: set.CreatedAt,
	}
	return &out, nil
}

func (c *MemoryQuoteCache) Put(ctx context.Context, fingerprint string, quotes []models.Quote, createdAt time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[fingerprint] = models.CachedQuoteSet{
		Quotes:    append([]models.Quote(nil), quotes...),
		CreatedAt: createdAt,
	}
	return nil
}
