// Package stock contains stock position use cases.
package stock

import (
	"context"
	"fmt"

	"github.com/finly/backend/internal/application/adapter"
	"github.com/finly/backend/internal/domain/entity"
)

// ListStocksInput represents the input for stock listing.
type ListStocksInput struct {
	WalletID *int64
}

// ListStocksOutput represents the output of stock listing.
type ListStocksOutput struct {
	Stocks []*entity.Stock
}

// ListStocksUseCase handles stock listing logic.
type ListStocksUseCase struct {
	stockRepo adapter.StockRepository
}

// NewListStocksUseCase creates a new ListStocksUseCase instance.
func NewListStocksUseCase(stockRepo adapter.StockRepository) *ListStocksUseCase {
	return &ListStocksUseCase{
		stockRepo: stockRepo,
	}
}

// Execute retrieves stocks ordered by start date descending, optionally
// restricted to one wallet.
func (uc *ListStocksUseCase) Execute(ctx context.Context, input ListStocksInput) (*ListStocksOutput, error) {
	stocks, err := uc.stockRepo.List(ctx, input.WalletID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stocks: %w", err)
	}

	return &ListStocksOutput{Stocks: stocks}, nil
}
