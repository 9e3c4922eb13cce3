package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/finly/backend/internal/application/adapter"
	domainerror "github.com/finly/backend/internal/domain/error"
)

// DeleteWalletInput represents the input for wallet deletion.
type DeleteWalletInput struct {
	WalletID int64
}

// DeleteWalletOutput represents the output of wallet deletion.
type DeleteWalletOutput struct {
	Success bool
}

// DeleteWalletUseCase handles wallet deletion logic. Transactions that
// reference the wallet keep their records; only the wallet link goes stale.
type DeleteWalletUseCase struct {
	walletRepo adapter.WalletRepository
}

// NewDeleteWalletUseCase creates a new DeleteWalletUseCase instance.
func NewDeleteWalletUseCase(walletRepo adapter.WalletRepository) *DeleteWalletUseCase {
	return &DeleteWalletUseCase{
		walletRepo: walletRepo,
	}
}

// Execute performs the wallet deletion.
func (uc *DeleteWalletUseCase) Execute(ctx context.Context, input DeleteWalletInput) (*DeleteWalletOutput, error) {
	if _, err := uc.walletRepo.FindByID(ctx, input.WalletID); err != nil {
		if errors.Is(err, domainerror.ErrWalletNotFound) {
			return nil, domainerror.NewWalletError(
				domainerror.ErrCodeWalletNotFound,
				"wallet not found",
				domainerror.ErrWalletNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find wallet: %w", err)
	}

	if err := uc.walletRepo.Delete(ctx, input.WalletID); err != nil {
		return nil, fmt.Errorf("failed to delete wallet: %w", err)
	}

	return &DeleteWalletOutput{Success: true}, nil
}
