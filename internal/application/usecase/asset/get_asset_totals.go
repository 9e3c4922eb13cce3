package asset

import (
	"context"
	"fmt"

	"github.com/finly/backend/internal/application/adapter"
	"github.com/finly/backend/internal/domain/ledger"
)

// GetAssetTotalsOutput represents the output of the portfolio summary.
type GetAssetTotalsOutput struct {
	Totals ledger.AssetTotals
}

// GetAssetTotalsUseCase computes the portfolio value and per-type breakdown
// over all assets, with Loan assets counted against the total.
type GetAssetTotalsUseCase struct {
	assetRepo adapter.AssetRepository
}

// NewGetAssetTotalsUseCase creates a new GetAssetTotalsUseCase instance.
func NewGetAssetTotalsUseCase(assetRepo adapter.AssetRepository) *GetAssetTotalsUseCase {
	return &GetAssetTotalsUseCase{
		assetRepo: assetRepo,
	}
}

// Execute computes the asset totals.
func (uc *GetAssetTotalsUseCase) Execute(ctx context.Context) (*GetAssetTotalsOutput, error) {
	assets, err := uc.assetRepo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	return &GetAssetTotalsOutput{
		Totals: ledger.SummarizeAssets(assets),
	}, nil
}
