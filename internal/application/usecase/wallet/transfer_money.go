package wallet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finly/backend/internal/application/adapter"
	"github.com/finly/backend/internal/domain/entity"
	domainerror "github.com/finly/backend/internal/domain/error"
	"github.com/finly/backend/internal/domain/ledger"
)

// TransferCategory is the category stamped on both legs of a transfer.
const TransferCategory = "Transfer"

// TransferMoneyInput represents the input for a wallet-to-wallet transfer.
type TransferMoneyInput struct {
	FromWalletID int64
	ToWalletID   int64
	Amount       decimal.Decimal
	Description  string
}

// TransferMoneyOutput represents the output of a transfer: both wallets in
// their post-transfer state.
type TransferMoneyOutput struct {
	FromWallet *entity.Wallet
	ToWallet   *entity.Wallet
}

// TransferMoneyUseCase moves money between two wallets and records an
// expense leg on the source and an income leg on the destination. Wallet
// updates and both legs commit in a single database transaction.
type TransferMoneyUseCase struct {
	walletRepo adapter.WalletRepository
}

// NewTransferMoneyUseCase creates a new TransferMoneyUseCase instance.
func NewTransferMoneyUseCase(walletRepo adapter.WalletRepository) *TransferMoneyUseCase {
	return &TransferMoneyUseCase{
		walletRepo: walletRepo,
	}
}

// Execute performs the transfer.
func (uc *TransferMoneyUseCase) Execute(ctx context.Context, input TransferMoneyInput) (*TransferMoneyOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeInvalidTransferAmount,
			"transfer amount must be positive",
			domainerror.ErrInvalidTransferAmount,
		)
	}
	if input.FromWalletID == input.ToWalletID {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeSameWalletTransfer,
			"cannot transfer to the same wallet",
			domainerror.ErrSameWalletTransfer,
		)
	}

	from, err := uc.findWallet(ctx, input.FromWalletID, "source wallet not found")
	if err != nil {
		return nil, err
	}
	to, err := uc.findWallet(ctx, input.ToWalletID, "destination wallet not found")
	if err != nil {
		return nil, err
	}

	if err := ledger.Transfer(from, to, input.Amount); err != nil {
		return nil, err
	}

	description := input.Description
	if description == "" {
		description = "Transfer to " + to.Name
	}

	now := time.Now().UTC()
	legs := []*entity.Transaction{
		entity.NewTransaction(
			entity.TransactionTypeExpense,
			input.Amount,
			description,
			TransferCategory,
			&from.ID,
			now,
		),
		entity.NewTransaction(
			entity.TransactionTypeIncome,
			input.Amount,
			"Transfer from "+from.Name,
			TransferCategory,
			&to.ID,
			now,
		),
	}

	if err := uc.walletRepo.SaveTransfer(ctx, from, to, legs); err != nil {
		return nil, fmt.Errorf("failed to save transfer: %w", err)
	}

	return &TransferMoneyOutput{FromWallet: from, ToWallet: to}, nil
}

func (uc *TransferMoneyUseCase) findWallet(ctx context.Context, id int64, message string) (*entity.Wallet, error) {
	wallet, err := uc.walletRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrWalletNotFound) {
			return nil, domainerror.NewWalletError(
				domainerror.ErrCodeWalletNotFound,
				message,
				domainerror.ErrWalletNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find wallet: %w", err)
	}
	return wallet, nil
}
