package marketdata

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/finly/backend/internal/domain/entity"
	domainerror "github.com/finly/backend/internal/domain/error"
)

func newTestCache(t *testing.T) (*RedisQuoteCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisQuoteCache(client), mr
}

func TestRedisQuoteCache(t *testing.T) {
	ctx := context.Background()

	t.Run("round-trips a quote", func(t *testing.T) {
		cache, _ := newTestCache(t)
		quote := &entity.Quote{
			Symbol:    "BTC",
			Price:     64250.5,
			Change24h: -1.2,
			Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		}

		if err := cache.Set(ctx, "quote:crypto:BTC", quote, time.Minute); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := cache.Get(ctx, "quote:crypto:BTC")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Symbol != "BTC" || got.Price != 64250.5 || got.Change24h != -1.2 {
			t.Errorf("quote mismatch: %+v", got)
		}
		if !got.Timestamp.Equal(quote.Timestamp) {
			t.Errorf("timestamp mismatch: %s", got.Timestamp)
		}
	})

	t.Run("missing key reports a cache miss", func(t *testing.T) {
		cache, _ := newTestCache(t)

		_, err := cache.Get(ctx, "quote:crypto:ETH")
		if !errors.Is(err, domainerror.ErrQuoteCacheMiss) {
			t.Fatalf("expected ErrQuoteCacheMiss, got %v", err)
		}
	})

	t.Run("entries expire after their TTL", func(t *testing.T) {
		cache, mr := newTestCache(t)
		quote := &entity.Quote{Symbol: "GOLD", Price: 4200, Timestamp: time.Now().UTC()}

		if err := cache.Set(ctx, "quote:gold", quote, time.Minute); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		mr.FastForward(2 * time.Minute)

		_, err := cache.Get(ctx, "quote:gold")
		if !errors.Is(err, domainerror.ErrQuoteCacheMiss) {
			t.Fatalf("expected ErrQuoteCacheMiss after expiry, got %v", err)
		}
	})
}
