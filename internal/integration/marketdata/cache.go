package marketdata

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/finly/backend/internal/application/adapter"
	"github.com/finly/backend/internal/domain/entity"
	domainerror "github.com/finly/backend/internal/domain/error"
)

// RedisQuoteCache stores quotes as JSON values with a per-entry TTL.
type RedisQuoteCache struct {
	client *redis.Client
}

// NewRedisQuoteCache creates a new RedisQuoteCache instance.
func NewRedisQuoteCache(client *redis.Client) *RedisQuoteCache {
	return &RedisQuoteCache{
		client: client,
	}
}

// Get returns the cached quote for key, or ErrQuoteCacheMiss.
func (c *RedisQuoteCache) Get(ctx context.Context, key string) (*entity.Quote, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domainerror.ErrQuoteCacheMiss
		}
		return nil, err
	}

	var quote entity.Quote
	if err := json.Unmarshal(payload, &quote); err != nil {
		return nil, err
	}
	return &quote, nil
}

// Set stores a quote under key for ttl.
func (c *RedisQuoteCache) Set(ctx context.Context, key string, quote *entity.Quote, ttl time.Duration) error {
	payload, err := json.Marshal(quote)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, ttl).Err()
}

var _ adapter.QuoteCache = (*RedisQuoteCache)(nil)
