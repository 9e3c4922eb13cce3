package marketdata

import (
	"context"
	"log/slog"
	"time"

	"github.com/finly/backend/internal/application/adapter"
	"github.com/finly/backend/internal/domain/entity"
	domainerror "github.com/finly/backend/internal/domain/error"
)

// Provider composes the upstream clients into a single adapter.QuoteProvider.
type Provider struct {
	coingecko *CoinGeckoClient
	yahoo     *YahooClient
	coinbase  *CoinbaseClient
}

// NewProvider creates a Provider whose clients share one request timeout.
func NewProvider(timeout time.Duration) *Provider {
	return &Provider{
		coingecko: NewCoinGeckoClient(timeout),
		yahoo:     NewYahooClient(timeout),
		coinbase:  NewCoinbaseClient(timeout),
	}
}

// CryptoQuote fetches a cryptocurrency price from CoinGecko.
func (p *Provider) CryptoQuote(ctx context.Context, symbol string) (*entity.Quote, error) {
	return p.coingecko.CryptoQuote(ctx, symbol)
}

// StockQuote fetches a stock or index price from Yahoo Finance.
func (p *Provider) StockQuote(ctx context.Context, symbol string) (*entity.Quote, error) {
	return p.yahoo.StockQuote(ctx, symbol)
}

// GoldQuote fetches the gold spot price from Coinbase, falling back to the
// Yahoo GC=F gold futures contract when Coinbase fails.
func (p *Provider) GoldQuote(ctx context.Context) (*entity.Quote, error) {
	quote, err := p.coinbase.GoldQuote(ctx)
	if err == nil {
		return quote, nil
	}
	slog.Warn("coinbase gold quote failed, trying futures", "error", err)

	futures, ferr := p.yahoo.StockQuote(ctx, "GC=F")
	if ferr != nil {
		return nil, domainerror.ErrMarketUnavailable
	}
	if futures.Price <= goldPriceFloor || futures.Price >= goldPriceCeiling {
		return nil, domainerror.ErrMarketUnavailable
	}

	futures.Symbol = "GOLD"
	return futures, nil
}

var _ adapter.QuoteProvider = (*Provider)(nil)
