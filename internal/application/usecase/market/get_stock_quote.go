package market

import (
	"context"
	"strings"
	"time"

	"github.com/finly/backend/internal/application/adapter"
	"github.com/finly/backend/internal/domain/entity"
)

// GetStockQuoteInput represents the input for a stock price lookup.
type GetStockQuoteInput struct {
	Symbol string
}

// GetStockQuoteOutput represents the output of a stock price lookup.
type GetStockQuoteOutput struct {
	Quote *entity.Quote
}

// GetStockQuoteUseCase fetches the current price for a stock or index ticker.
type GetStockQuoteUseCase struct {
	provider adapter.QuoteProvider
	cache    adapter.QuoteCache
	cacheTTL time.Duration
}

// NewGetStockQuoteUseCase creates a new GetStockQuoteUseCase instance.
func NewGetStockQuoteUseCase(
	provider adapter.QuoteProvider,
	cache adapter.QuoteCache,
	cacheTTL time.Duration,
) *GetStockQuoteUseCase {
	return &GetStockQuoteUseCase{
		provider: provider,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// Execute fetches the stock quote, serving from cache when fresh.
func (uc *GetStockQuoteUseCase) Execute(ctx context.Context, input GetStockQuoteInput) (*GetStockQuoteOutput, error) {
	symbol := strings.ToUpper(input.Symbol)

	quote, err := cachedQuote(ctx, uc.cache, "quote:stock:"+symbol, uc.cacheTTL,
		func(ctx context.Context) (*entity.Quote, error) {
			return uc.provider.StockQuote(ctx, symbol)
		})
	if err != nil {
		return nil, err
	}

	return &GetStockQuoteOutput{Quote: quote}, nil
}
