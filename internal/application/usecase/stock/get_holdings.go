package stock

import (
	"context"
	"fmt"

	"github.com/finly/backend/internal/application/adapter"
	"github.com/finly/backend/internal/domain/ledger"
)

// GetHoldingsInput represents the input for the holdings valuation.
type GetHoldingsInput struct {
	WalletID *int64
}

// GetHoldingsOutput represents the output of the holdings valuation.
type GetHoldingsOutput struct {
	Valuation ledger.HoldingValuation
}

// GetHoldingsUseCase values currently-held positions at their purchase
// basis, optionally restricted to one wallet.
type GetHoldingsUseCase struct {
	stockRepo adapter.StockRepository
}

// NewGetHoldingsUseCase creates a new GetHoldingsUseCase instance.
func NewGetHoldingsUseCase(stockRepo adapter.StockRepository) *GetHoldingsUseCase {
	return &GetHoldingsUseCase{
		stockRepo: stockRepo,
	}
}

// Execute computes the holdings valuation.
func (uc *GetHoldingsUseCase) Execute(ctx context.Context, input GetHoldingsInput) (*GetHoldingsOutput, error) {
	stocks, err := uc.stockRepo.List(ctx, input.WalletID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stocks: %w", err)
	}

	return &GetHoldingsOutput{
		Valuation: ledger.ValueHoldings(stocks, input.WalletID),
	}, nil
}
