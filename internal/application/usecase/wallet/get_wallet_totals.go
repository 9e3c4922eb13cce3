package wallet

import (
	"context"
	"fmt"

	"github.com/finly/backend/internal/application/adapter"
	"github.com/finly/backend/internal/domain/ledger"
)

// GetWalletTotalsOutput represents the output of the wallet totals summary.
type GetWalletTotalsOutput struct {
	Totals ledger.WalletTotals
}

// GetWalletTotalsUseCase computes the aggregate position across all wallets,
// with Credit wallets reported as debt rather than holdings.
type GetWalletTotalsUseCase struct {
	walletRepo adapter.WalletRepository
}

// NewGetWalletTotalsUseCase creates a new GetWalletTotalsUseCase instance.
func NewGetWalletTotalsUseCase(walletRepo adapter.WalletRepository) *GetWalletTotalsUseCase {
	return &GetWalletTotalsUseCase{
		walletRepo: walletRepo,
	}
}

// Execute computes the wallet totals.
func (uc *GetWalletTotalsUseCase) Execute(ctx context.Context) (*GetWalletTotalsOutput, error) {
	wallets, err := uc.walletRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}

	return &GetWalletTotalsOutput{
		Totals: ledger.SummarizeWallets(wallets),
	}, nil
}
