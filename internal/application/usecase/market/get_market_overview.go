package market

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/finly/backend/internal/application/adapter"
	"github.com/finly/backend/internal/domain/entity"
)

// GetMarketOverviewOutput maps indicator names to quotes. An indicator whose
// source failed is present with a nil quote, so the shape stays stable.
type GetMarketOverviewOutput struct {
	Quotes    map[string]*entity.Quote
	Timestamp time.Time
}

// GetMarketOverviewUseCase fetches the dashboard's standard set of market
// indicators concurrently. Individual source failures do not fail the
// overview.
type GetMarketOverviewUseCase struct {
	provider adapter.QuoteProvider
	cache    adapter.QuoteCache
	cacheTTL time.Duration
}

// NewGetMarketOverviewUseCase creates a new GetMarketOverviewUseCase instance.
func NewGetMarketOverviewUseCase(
	provider adapter.QuoteProvider,
	cache adapter.QuoteCache,
	cacheTTL time.Duration,
) *GetMarketOverviewUseCase {
	return &GetMarketOverviewUseCase{
		provider: provider,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// Execute fetches all indicators in parallel.
func (uc *GetMarketOverviewUseCase) Execute(ctx context.Context) (*GetMarketOverviewOutput, error) {
	fetchers := map[string]func(context.Context) (*entity.Quote, error){
		"bitcoin": func(ctx context.Context) (*entity.Quote, error) {
			return uc.crypto(ctx, "BTC")
		},
		"ethereum": func(ctx context.Context) (*entity.Quote, error) {
			return uc.crypto(ctx, "ETH")
		},
		"bnb": func(ctx context.Context) (*entity.Quote, error) {
			return uc.crypto(ctx, "BNB")
		},
		"gold": func(ctx context.Context) (*entity.Quote, error) {
			return cachedQuote(ctx, uc.cache, "quote:gold", uc.cacheTTL, uc.provider.GoldQuote)
		},
		"sp500": func(ctx context.Context) (*entity.Quote, error) {
			return uc.stock(ctx, "GSPC")
		},
		"dollar_index": func(ctx context.Context) (*entity.Quote, error) {
			return uc.stock(ctx, "DX-Y.NYB")
		},
		"dow_jones": func(ctx context.Context) (*entity.Quote, error) {
			return uc.stock(ctx, "DJI")
		},
		"nasdaq": func(ctx context.Context) (*entity.Quote, error) {
			return uc.stock(ctx, "IXIC")
		},
	}

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		quotes = make(map[string]*entity.Quote, len(fetchers))
	)

	for name, fetch := range fetchers {
		wg.Add(1)
		go func(name string, fetch func(context.Context) (*entity.Quote, error)) {
			defer wg.Done()

			quote, err := fetch(ctx)
			if err != nil {
				slog.Warn("market indicator fetch failed", "indicator", name, "error", err)
				quote = nil
			}

			mu.Lock()
			quotes[name] = quote
			mu.Unlock()
		}(name, fetch)
	}
	wg.Wait()

	return &GetMarketOverviewOutput{
		Quotes:    quotes,
		Timestamp: time.Now().UTC(),
	}, nil
}

func (uc *GetMarketOverviewUseCase) crypto(ctx context.Context, symbol string) (*entity.Quote, error) {
	return cachedQuote(ctx, uc.cache, "quote:crypto:"+symbol, uc.cacheTTL,
		func(ctx context.Context) (*entity.Quote, error) {
			return uc.provider.CryptoQuote(ctx, symbol)
		})
}

func (uc *GetMarketOverviewUseCase) stock(ctx context.Context, symbol string) (*entity.Quote, error) {
	return cachedQuote(ctx, uc.cache, "quote:stock:"+symbol, uc.cacheTTL,
		func(ctx context.Context) (*entity.Quote, error) {
			return uc.provider.StockQuote(ctx, symbol)
		})
}
