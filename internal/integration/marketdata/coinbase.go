package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/finly/backend/internal/domain/entity"
	domainerror "github.com/finly/backend/internal/domain/error"
)

const coinbaseBaseURL = "https://api.coinbase.com/v2"

// Spot prices outside this USD-per-ounce range are treated as bad data.
const (
	goldPriceFloor   = 1000.0
	goldPriceCeiling = 10000.0
)

// CoinbaseClient derives the gold spot price from Coinbase's USD exchange
// rate table, which includes XAU.
type CoinbaseClient struct {
	baseURL string
	cli     *http.Client
}

// NewCoinbaseClient creates a new CoinbaseClient instance.
func NewCoinbaseClient(timeout time.Duration) *CoinbaseClient {
	return &CoinbaseClient{
		baseURL: coinbaseBaseURL,
		cli:     &http.Client{Timeout: timeout},
	}
}

// GoldQuote returns the current gold price in USD per troy ounce. Coinbase
// reports XAU per USD, so the rate is inverted.
func (c *CoinbaseClient) GoldQuote(ctx context.Context) (*entity.Quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/exchange-rates?currency=USD", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.cli.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("coinbase http %d: %w", resp.StatusCode, domainerror.ErrQuoteNotFound)
	}

	var raw struct {
		Data struct {
			Rates map[string]string `json:"rates"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, err
	}

	rate, ok := raw.Data.Rates["XAU"]
	if !ok {
		return nil, fmt.Errorf("coinbase: no XAU rate: %w", domainerror.ErrQuoteNotFound)
	}

	xauPerUSD, err := strconv.ParseFloat(rate, 64)
	if err != nil || xauPerUSD <= 0 {
		return nil, fmt.Errorf("coinbase: bad XAU rate %q: %w", rate, domainerror.ErrQuoteNotFound)
	}

	pricePerOunce := 1.0 / xauPerUSD
	if pricePerOunce <= goldPriceFloor || pricePerOunce >= goldPriceCeiling {
		return nil, fmt.Errorf("coinbase: implausible gold price %.2f: %w", pricePerOunce, domainerror.ErrQuoteNotFound)
	}

	return &entity.Quote{
		Symbol:    "GOLD",
		Price:     math.Round(pricePerOunce*100) / 100,
		Change24h: 0, // exchange rate table carries no 24h change
		Timestamp: time.Now().UTC(),
	}, nil
}
