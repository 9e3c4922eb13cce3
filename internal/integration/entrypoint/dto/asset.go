package dto

import (
	"time"

	"github.com/finly/backend/internal/domain/entity"
	"github.com/finly/backend/internal/domain/ledger"
)

// CreateAssetRequest represents the request body for asset creation.
type CreateAssetRequest struct {
	Type     string  `json:"type" binding:"required"`
	Name     string  `json:"name" binding:"required,max=100"`
	Amount   float64 `json:"amount" binding:"required"`
	Value    float64 `json:"value" binding:"required"`
	Currency string  `json:"currency" binding:"required,max=10"`
	Notes    *string `json:"notes,omitempty"`
	Date     string  `json:"date" binding:"required"`
}

// UpdateAssetRequest represents the request body for asset update.
type UpdateAssetRequest struct {
	Type     *string  `json:"type,omitempty"`
	Name     *string  `json:"name,omitempty" binding:"omitempty,max=100"`
	Amount   *float64 `json:"amount,omitempty"`
	Value    *float64 `json:"value,omitempty"`
	Currency *string  `json:"currency,omitempty" binding:"omitempty,max=10"`
	Notes    *string  `json:"notes,omitempty"`
	Date     *string  `json:"date,omitempty"`
}

// AssetResponse represents a single asset in API responses.
type AssetResponse struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"`
	Value     float64   `json:"value"`
	Currency  string    `json:"currency"`
	Notes     *string   `json:"notes,omitempty"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// AssetTypeTotalResponse represents one asset type's slice of the portfolio.
type AssetTypeTotalResponse struct {
	Count int     `json:"count"`
	Value float64 `json:"value"`
}

// AssetTotalsResponse represents the portfolio summary.
type AssetTotalsResponse struct {
	TotalPortfolioValue float64                           `json:"total_portfolio_value"`
	ByType              map[string]AssetTypeTotalResponse `json:"by_type"`
}

// ToAssetResponse converts a domain Asset entity to a response DTO.
func ToAssetResponse(asset *entity.Asset) AssetResponse {
	return AssetResponse{
		ID:        asset.ID,
		Type:      string(asset.Type),
		Name:      asset.Name,
		Amount:    asset.Amount.InexactFloat64(),
		Value:     asset.Value.InexactFloat64(),
		Currency:  asset.Currency,
		Notes:     asset.Notes,
		Date:      asset.Date.Format(DateLayout),
		CreatedAt: asset.CreatedAt,
	}
}

// ToAssetListResponse converts assets to a list of response DTOs.
func ToAssetListResponse(assets []*entity.Asset) []AssetResponse {
	responses := make([]AssetResponse, len(assets))
	for i, a := range assets {
		responses[i] = ToAssetResponse(a)
	}
	return responses
}

// ToAssetTotalsResponse converts ledger totals to a response DTO.
func ToAssetTotalsResponse(totals ledger.AssetTotals) AssetTotalsResponse {
	byType := make(map[string]AssetTypeTotalResponse, len(totals.ByType))
	for assetType, typeTotal := range totals.ByType {
		byType[string(assetType)] = AssetTypeTotalResponse{
			Count: typeTotal.Count,
			Value: typeTotal.Value.InexactFloat64(),
		}
	}

	return AssetTotalsResponse{
		TotalPortfolioValue: totals.TotalPortfolioValue.InexactFloat64(),
		ByType:              byType,
	}
}
