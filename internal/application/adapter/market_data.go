package adapter

import (
	"context"
	"time"

	"github.com/finly/backend/internal/domain/entity"
)

// QuoteProvider fetches live prices from external market data sources.
type QuoteProvider interface {
	// CryptoQuote returns the current price for a crypto symbol (e.g. BTC).
	CryptoQuote(ctx context.Context, symbol string) (*entity.Quote, error)

	// StockQuote returns the current price for a stock ticker (e.g. AAPL).
	StockQuote(ctx context.Context, symbol string) (*entity.Quote, error)

	// GoldQuote returns the current gold spot price in USD per troy ounce.
	GoldQuote(ctx context.Context) (*entity.Quote, error)
}

// QuoteCache stores quotes for a bounded time so repeated requests do not
// hammer the upstream providers.
type QuoteCache interface {
	// Get returns the cached quote for key, or a miss error.
	Get(ctx context.Context, key string) (*entity.Quote, error)

	// Set stores a quote under key for ttl.
	Set(ctx context.Context, key string, quote *entity.Quote, ttl time.Duration) error
}
