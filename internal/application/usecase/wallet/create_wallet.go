package wallet

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finly/backend/internal/application/adapter"
	"github.com/finly/backend/internal/domain/entity"
	domainerror "github.com/finly/backend/internal/domain/error"
)

// CreateWalletInput represents the input for wallet creation. The numeric
// fields are optional and default to zero.
type CreateWalletInput struct {
	Name            string
	Type            entity.WalletType
	Detail          *string
	Margin          *decimal.Decimal
	Cash            *decimal.Decimal
	InvestmentValue *decimal.Decimal
	GrossBalance    *decimal.Decimal
	Loan            *decimal.Decimal
	NotMine         bool
}

// CreateWalletOutput represents the output of wallet creation.
type CreateWalletOutput struct {
	Wallet *entity.Wallet
}

// CreateWalletUseCase handles wallet creation logic.
type CreateWalletUseCase struct {
	walletRepo adapter.WalletRepository
}

// NewCreateWalletUseCase creates a new CreateWalletUseCase instance.
func NewCreateWalletUseCase(walletRepo adapter.WalletRepository) *CreateWalletUseCase {
	return &CreateWalletUseCase{
		walletRepo: walletRepo,
	}
}

// Execute performs the wallet creation. New wallets always start at a zero
// balance; money arrives through transactions and transfers.
func (uc *CreateWalletUseCase) Execute(ctx context.Context, input CreateWalletInput) (*CreateWalletOutput, error) {
	if !entity.IsValidWalletType(input.Type) {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeInvalidWalletType,
			fmt.Sprintf("wallet type must be one of %v", entity.WalletTypes),
			domainerror.ErrInvalidWalletType,
		)
	}

	wallet := &entity.Wallet{
		Name:            input.Name,
		Balance:         decimal.Zero,
		Type:            input.Type,
		Detail:          input.Detail,
		Margin:          orZero(input.Margin),
		Cash:            orZero(input.Cash),
		InvestmentValue: orZero(input.InvestmentValue),
		GrossBalance:    orZero(input.GrossBalance),
		Loan:            orZero(input.Loan),
		NotMine:         input.NotMine,
		CreatedAt:       time.Now().UTC(),
	}

	if err := uc.walletRepo.Create(ctx, wallet); err != nil {
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}

	return &CreateWalletOutput{Wallet: wallet}, nil
}

func orZero(d *decimal.Decimal) *decimal.Decimal {
	if d != nil {
		return d
	}
	zero := decimal.Zero
	return &zero
}
