// Package wallet contains wallet-related use cases.
package wallet

import (
	"context"
	"fmt"

	"github.com/finly/backend/internal/application/adapter"
	"github.com/finly/backend/internal/domain/entity"
)

// ListWalletsOutput represents the output of wallet listing.
type ListWalletsOutput struct {
	Wallets []*entity.Wallet
}

// ListWalletsUseCase handles wallet listing logic.
type ListWalletsUseCase struct {
	walletRepo adapter.WalletRepository
}

// NewListWalletsUseCase creates a new ListWalletsUseCase instance.
func NewListWalletsUseCase(walletRepo adapter.WalletRepository) *ListWalletsUseCase {
	return &ListWalletsUseCase{
		walletRepo: walletRepo,
	}
}

// Execute retrieves all wallets, newest first.
func (uc *ListWalletsUseCase) Execute(ctx context.Context) (*ListWalletsOutput, error) {
	wallets, err := uc.walletRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}

	return &ListWalletsOutput{Wallets: wallets}, nil
}
