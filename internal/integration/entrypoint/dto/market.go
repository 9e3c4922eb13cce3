package dto

import (
	"time"

	"github.com/finly/backend/internal/domain/entity"
)

// MarketOverviewResponse represents the standard market indicator set. An
// indicator whose source failed is present with a null quote.
type MarketOverviewResponse struct {
	Bitcoin     *entity.Quote `json:"bitcoin"`
	Ethereum    *entity.Quote `json:"ethereum"`
	BNB         *entity.Quote `json:"bnb"`
	Gold        *entity.Quote `json:"gold"`
	SP500       *entity.Quote `json:"sp500"`
	DollarIndex *entity.Quote `json:"dollar_index"`
	DowJones    *entity.Quote `json:"dow_jones"`
	Nasdaq      *entity.Quote `json:"nasdaq"`
	Timestamp   time.Time     `json:"timestamp"`
}

// MarketSummaryResponse condenses the overview to prices only.
type MarketSummaryResponse struct {
	Summary   map[string]*float64 `json:"summary"`
	Timestamp time.Time           `json:"timestamp"`
}

// ToMarketOverviewResponse converts the quote map to a response DTO.
func ToMarketOverviewResponse(quotes map[string]*entity.Quote, timestamp time.Time) MarketOverviewResponse {
	return MarketOverviewResponse{
		Bitcoin:     quotes["bitcoin"],
		Ethereum:    quotes["ethereum"],
		BNB:         quotes["bnb"],
		Gold:        quotes["gold"],
		SP500:       quotes["sp500"],
		DollarIndex: quotes["dollar_index"],
		DowJones:    quotes["dow_jones"],
		Nasdaq:      quotes["nasdaq"],
		Timestamp:   timestamp,
	}
}

// ToMarketSummaryResponse converts the quote map to a price-only summary.
func ToMarketSummaryResponse(quotes map[string]*entity.Quote, timestamp time.Time) MarketSummaryResponse {
	summary := make(map[string]*float64, len(quotes))
	for name, quote := range quotes {
		if quote != nil {
			price := quote.Price
			summary[name] = &price
		} else {
			summary[name] = nil
		}
	}

	return MarketSummaryResponse{
		Summary:   summary,
		Timestamp: timestamp,
	}
}
