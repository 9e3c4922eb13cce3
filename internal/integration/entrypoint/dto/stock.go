package dto

import (
	"time"

	"github.com/finly/backend/internal/domain/entity"
	"github.com/finly/backend/internal/domain/ledger"
)

// CreateStockRequest represents the request body for a stock purchase.
type CreateStockRequest struct {
	WalletID   int64    `json:"wallet_id" binding:"required"`
	Code       string   `json:"code" binding:"required,max=20"`
	Volume     float64  `json:"volume" binding:"required,gte=0"`
	StartPrice float64  `json:"start_price" binding:"required,gte=0"`
	StartDate  string   `json:"start_date" binding:"required"`
	Margin     *float64 `json:"margin,omitempty"`
}

// UpdateStockRequest represents the request body for a stock update. Setting
// is_holding to false together with sell_price sells the position.
type UpdateStockRequest struct {
	Code       *string  `json:"code,omitempty" binding:"omitempty,max=20"`
	Volume     *float64 `json:"volume,omitempty" binding:"omitempty,gte=0"`
	StartPrice *float64 `json:"start_price,omitempty" binding:"omitempty,gte=0"`
	StartDate  *string  `json:"start_date,omitempty"`
	SellPrice  *float64 `json:"sell_price,omitempty" binding:"omitempty,gte=0"`
	SellDate   *string  `json:"sell_date,omitempty"`
	IsHolding  *bool    `json:"is_holding,omitempty"`
	Margin     *float64 `json:"margin,omitempty"`
}

// StockResponse represents a single stock in API responses.
type StockResponse struct {
	ID         int64      `json:"id"`
	WalletID   int64      `json:"wallet_id"`
	Code       string     `json:"code"`
	Volume     float64    `json:"volume"`
	StartPrice float64    `json:"start_price"`
	StartDate  string     `json:"start_date"`
	SellPrice  *float64   `json:"sell_price,omitempty"`
	SellDate   *string    `json:"sell_date,omitempty"`
	IsHolding  bool       `json:"is_holding"`
	Margin     *float64   `json:"margin,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// HoldingsResponse represents the valuation of currently-held positions.
type HoldingsResponse struct {
	Holdings   []StockResponse `json:"holdings"`
	TotalValue float64         `json:"total_value"`
}

// ToStockResponse converts a domain Stock entity to a response DTO.
func ToStockResponse(stock *entity.Stock) StockResponse {
	var sellDate *string
	if stock.SellDate != nil {
		formatted := stock.SellDate.Format(DateLayout)
		sellDate = &formatted
	}

	return StockResponse{
		ID:         stock.ID,
		WalletID:   stock.WalletID,
		Code:       stock.Code,
		Volume:     stock.Volume.InexactFloat64(),
		StartPrice: stock.StartPrice.InexactFloat64(),
		StartDate:  stock.StartDate.Format(DateLayout),
		SellPrice:  decimalPtrToFloat(stock.SellPrice),
		SellDate:   sellDate,
		IsHolding:  stock.IsHolding,
		Margin:     decimalPtrToFloat(stock.Margin),
		CreatedAt:  stock.CreatedAt,
	}
}

// ToStockListResponse converts stocks to a list of response DTOs.
func ToStockListResponse(stocks []*entity.Stock) []StockResponse {
	responses := make([]StockResponse, len(stocks))
	for i, s := range stocks {
		responses[i] = ToStockResponse(s)
	}
	return responses
}

// ToHoldingsResponse converts a ledger valuation to a response DTO.
func ToHoldingsResponse(valuation ledger.HoldingValuation) HoldingsResponse {
	return HoldingsResponse{
		Holdings:   ToStockListResponse(valuation.Holdings),
		TotalValue: valuation.TotalValue.InexactFloat64(),
	}
}
