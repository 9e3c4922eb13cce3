package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/finly/backend/internal/application/adapter"
	"github.com/finly/backend/internal/domain/entity"
	domainerror "github.com/finly/backend/internal/domain/error"
)

// GetWalletInput represents the input for fetching a single wallet.
type GetWalletInput struct {
	WalletID int64
}

// GetWalletOutput represents the output of fetching a single wallet.
type GetWalletOutput struct {
	Wallet *entity.Wallet
}

// GetWalletUseCase handles single wallet retrieval.
type GetWalletUseCase struct {
	walletRepo adapter.WalletRepository
}

// NewGetWalletUseCase creates a new GetWalletUseCase instance.
func NewGetWalletUseCase(walletRepo adapter.WalletRepository) *GetWalletUseCase {
	return &GetWalletUseCase{
		walletRepo: walletRepo,
	}
}

// Execute retrieves a wallet by ID.
func (uc *GetWalletUseCase) Execute(ctx context.Context, input GetWalletInput) (*GetWalletOutput, error) {
	wallet, err := uc.walletRepo.FindByID(ctx, input.WalletID)
	if err != nil {
		if errors.Is(err, domainerror.ErrWalletNotFound) {
			return nil, domainerror.NewWalletError(
				domainerror.ErrCodeWalletNotFound,
				"wallet not found",
				domainerror.ErrWalletNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find wallet: %w", err)
	}

	return &GetWalletOutput{Wallet: wallet}, nil
}
