// Package marketdata implements quote providers backed by public market APIs
// and a Redis-backed quote cache.
package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/finly/backend/internal/domain/entity"
	domainerror "github.com/finly/backend/internal/domain/error"
)

const coinGeckoBaseURL = "https://api.coingecko.com/api/v3"

// coinGeckoIDs maps ticker symbols to CoinGecko coin IDs. Unknown symbols
// are passed through lowercased, which works for coins whose ID matches
// their name.
var coinGeckoIDs = map[string]string{
	"BTC":  "bitcoin",
	"ETH":  "ethereum",
	"BNB":  "binancecoin",
	"SOL":  "solana",
	"ADA":  "cardano",
	"XRP":  "ripple",
	"DOGE": "dogecoin",
}

// CoinGeckoClient fetches cryptocurrency prices from the CoinGecko simple
// price API.
type CoinGeckoClient struct {
	baseURL string
	cli     *http.Client
}

// NewCoinGeckoClient creates a new CoinGeckoClient instance.
func NewCoinGeckoClient(timeout time.Duration) *CoinGeckoClient {
	return &CoinGeckoClient{
		baseURL: coinGeckoBaseURL,
		cli:     &http.Client{Timeout: timeout},
	}
}

// CryptoQuote returns the current USD price and 24h change for a crypto symbol.
func (c *CoinGeckoClient) CryptoQuote(ctx context.Context, symbol string) (*entity.Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	coinID, ok := coinGeckoIDs[symbol]
	if !ok {
		coinID = strings.ToLower(symbol)
	}

	url := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=usd&include_24hr_change=true", c.baseURL, coinID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.cli.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("coingecko http %d: %w", resp.StatusCode, domainerror.ErrQuoteNotFound)
	}

	var raw map[string]struct {
		USD          float64 `json:"usd"`
		USD24hChange float64 `json:"usd_24h_change"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, err
	}

	price, ok := raw[coinID]
	if !ok {
		return nil, fmt.Errorf("coingecko: unknown coin %q: %w", coinID, domainerror.ErrQuoteNotFound)
	}

	return &entity.Quote{
		Symbol:    symbol,
		Price:     price.USD,
		Change24h: price.USD24hChange,
		Timestamp: time.Now().UTC(),
	}, nil
}
