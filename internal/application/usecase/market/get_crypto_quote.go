package market

import (
	"context"
	"strings"
	"time"

	"github.com/finly/backend/internal/application/adapter"
	"github.com/finly/backend/internal/domain/entity"
)

// GetCryptoQuoteInput represents the input for a crypto price lookup.
type GetCryptoQuoteInput struct {
	Symbol string
}

// GetCryptoQuoteOutput represents the output of a crypto price lookup.
type GetCryptoQuoteOutput struct {
	Quote *entity.Quote
}

// GetCryptoQuoteUseCase fetches the current price for a cryptocurrency.
type GetCryptoQuoteUseCase struct {
	provider adapter.QuoteProvider
	cache    adapter.QuoteCache
	cacheTTL time.Duration
}

// NewGetCryptoQuoteUseCase creates a new GetCryptoQuoteUseCase instance.
func NewGetCryptoQuoteUseCase(
	provider adapter.QuoteProvider,
	cache adapter.QuoteCache,
	cacheTTL time.Duration,
) *GetCryptoQuoteUseCase {
	return &GetCryptoQuoteUseCase{
		provider: provider,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// Execute fetches the crypto quote, serving from cache when fresh.
func (uc *GetCryptoQuoteUseCase) Execute(ctx context.Context, input GetCryptoQuoteInput) (*GetCryptoQuoteOutput, error) {
	symbol := strings.ToUpper(input.Symbol)

	quote, err := cachedQuote(ctx, uc.cache, "quote:crypto:"+symbol, uc.cacheTTL,
		func(ctx context.Context) (*entity.Quote, error) {
			return uc.provider.CryptoQuote(ctx, symbol)
		})
	if err != nil {
		return nil, err
	}

	return &GetCryptoQuoteOutput{Quote: quote}, nil
}
