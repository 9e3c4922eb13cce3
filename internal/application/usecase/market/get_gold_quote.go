package market

import (
	"context"
	"time"

	"github.com/finly/backend/internal/application/adapter"
	"github.com/finly/backend/internal/domain/entity"
)

// GetGoldQuoteOutput represents the output of a gold price lookup.
type GetGoldQuoteOutput struct {
	Quote *entity.Quote
}

// GetGoldQuoteUseCase fetches the current gold spot price.
type GetGoldQuoteUseCase struct {
	provider adapter.QuoteProvider
	cache    adapter.QuoteCache
	cacheTTL time.Duration
}

// NewGetGoldQuoteUseCase creates a new GetGoldQuoteUseCase instance.
func NewGetGoldQuoteUseCase(
	provider adapter.QuoteProvider,
	cache adapter.QuoteCache,
	cacheTTL time.Duration,
) *GetGoldQuoteUseCase {
	return &GetGoldQuoteUseCase{
		provider: provider,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// Execute fetches the gold quote, serving from cache when fresh.
func (uc *GetGoldQuoteUseCase) Execute(ctx context.Context) (*GetGoldQuoteOutput, error) {
	quote, err := cachedQuote(ctx, uc.cache, "quote:gold", uc.cacheTTL,
		func(ctx context.Context) (*entity.Quote, error) {
			return uc.provider.GoldQuote(ctx)
		})
	if err != nil {
		return nil, err
	}

	return &GetGoldQuoteOutput{Quote: quote}, nil
}
