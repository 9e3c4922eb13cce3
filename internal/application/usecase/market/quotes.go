// Package market contains market data use cases. Quotes come from external
// providers through a short-lived cache; they are purely presentational and
// never feed wallet or stock valuations.
package market

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/finly/backend/internal/application/adapter"
	"github.com/finly/backend/internal/domain/entity"
	domainerror "github.com/finly/backend/internal/domain/error"
)

// cachedQuote returns the cached quote for key when present, otherwise calls
// fetch and caches the result. Cache failures degrade to a direct fetch.
func cachedQuote(
	ctx context.Context,
	cache adapter.QuoteCache,
	key string,
	ttl time.Duration,
	fetch func(context.Context) (*entity.Quote, error),
) (*entity.Quote, error) {
	if cache != nil {
		quote, err := cache.Get(ctx, key)
		if err == nil {
			return quote, nil
		}
		if !errors.Is(err, domainerror.ErrQuoteCacheMiss) {
			slog.Warn("quote cache read failed", "key", key, "error", err)
		}
	}

	quote, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	if cache != nil {
		if err := cache.Set(ctx, key, quote, ttl); err != nil {
			slog.Warn("quote cache write failed", "key", key, "error", err)
		}
	}
	return quote, nil
}
