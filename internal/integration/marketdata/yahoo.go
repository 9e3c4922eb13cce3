package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/finly/backend/internal/domain/entity"
	domainerror "github.com/finly/backend/internal/domain/error"
)

const yahooBaseURL = "https://query1.finance.yahoo.com/v8/finance/chart"

// yahooSymbols maps shorthand index tickers to Yahoo Finance symbols.
var yahooSymbols = map[string]string{
	"GSPC": "^GSPC",
	"DJI":  "^DJI",
	"IXIC": "^IXIC",
}

// YahooClient fetches stock and index prices from the Yahoo Finance v8
// chart API.
type YahooClient struct {
	baseURL string
	cli     *http.Client
}

// NewYahooClient creates a new YahooClient instance.
func NewYahooClient(timeout time.Duration) *YahooClient {
	return &YahooClient{
		baseURL: yahooBaseURL,
		cli:     &http.Client{Timeout: timeout},
	}
}

// StockQuote returns the current price for a stock or index ticker, with the
// day's change as a percentage of the previous close.
func (c *YahooClient) StockQuote(ctx context.Context, symbol string) (*entity.Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	yahooSymbol, ok := yahooSymbols[symbol]
	if !ok {
		yahooSymbol = symbol
	}

	endpoint := fmt.Sprintf("%s/%s", c.baseURL, url.PathEscape(yahooSymbol))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	// Yahoo rejects requests without a browser-like user agent.
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")

	resp, err := c.cli.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo http %d: %w", resp.StatusCode, domainerror.ErrQuoteNotFound)
	}

	var raw struct {
		Chart struct {
			Result []struct {
				Meta struct {
					RegularMarketPrice float64 `json:"regularMarketPrice"`
					PreviousClose      float64 `json:"previousClose"`
				} `json:"meta"`
			} `json:"result"`
		} `json:"chart"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, err
	}
	if len(raw.Chart.Result) == 0 {
		return nil, fmt.Errorf("yahoo: no result for %q: %w", symbol, domainerror.ErrQuoteNotFound)
	}

	meta := raw.Chart.Result[0].Meta
	price := meta.RegularMarketPrice
	if price <= 0 {
		price = meta.PreviousClose
	}
	if price <= 0 {
		return nil, fmt.Errorf("yahoo: no price for %q: %w", symbol, domainerror.ErrQuoteNotFound)
	}

	var changePercent float64
	if meta.PreviousClose > 0 {
		changePercent = (price - meta.PreviousClose) / meta.PreviousClose * 100
	}

	return &entity.Quote{
		Symbol:    strings.TrimPrefix(symbol, "^"),
		Price:     price,
		Change24h: changePercent,
		Timestamp: time.Now().UTC(),
	}, nil
}
