package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finly/backend/internal/application/adapter"
	"github.com/finly/backend/internal/domain/entity"
	domainerror "github.com/finly/backend/internal/domain/error"
)

// UpdateWalletInput represents the input for wallet updates. Nil fields are
// left untouched. The wallet's type is fixed at creation.
type UpdateWalletInput struct {
	WalletID        int64
	Name            *string
	Balance         *decimal.Decimal
	Detail          *string
	Margin          *decimal.Decimal
	Cash            *decimal.Decimal
	InvestmentValue *decimal.Decimal
	GrossBalance    *decimal.Decimal
	Loan            *decimal.Decimal
	NotMine         *bool
}

// UpdateWalletOutput represents the output of wallet updates.
type UpdateWalletOutput struct {
	Wallet *entity.Wallet
}

// UpdateWalletUseCase handles wallet update logic.
type UpdateWalletUseCase struct {
	walletRepo adapter.WalletRepository
}

// NewUpdateWalletUseCase creates a new UpdateWalletUseCase instance.
func NewUpdateWalletUseCase(walletRepo adapter.WalletRepository) *UpdateWalletUseCase {
	return &UpdateWalletUseCase{
		walletRepo: walletRepo,
	}
}

// Execute performs the wallet update.
func (uc *UpdateWalletUseCase) Execute(ctx context.Context, input UpdateWalletInput) (*UpdateWalletOutput, error) {
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

	if input.Name != nil {
		wallet.Name = *input.Name
	}
	if input.Balance != nil {
		wallet.Balance = *input.Balance
	}
	if input.Detail != nil {
		wallet.Detail = input.Detail
	}
	if input.Margin != nil {
		wallet.Margin = input.Margin
	}
	if input.Cash != nil {
		wallet.Cash = input.Cash
	}
	if input.InvestmentValue != nil {
		wallet.InvestmentValue = input.InvestmentValue
	}
	if input.GrossBalance != nil {
		wallet.GrossBalance = input.GrossBalance
	}
	if input.Loan != nil {
		wallet.Loan = input.Loan
	}
	if input.NotMine != nil {
		wallet.NotMine = *input.NotMine
	}

	if err := uc.walletRepo.Update(ctx, wallet); err != nil {
		return nil, fmt.Errorf("failed to update wallet: %w", err)
	}

	return &UpdateWalletOutput{Wallet: wallet}, nil
}
