package transaction

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

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Type        entity.TransactionType
	Amount      decimal.Decimal
	Description string
	Category    string
	WalletID    *int64
	Date        time.Time
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic. When the
// transaction references a wallet, the wallet's balance moves in the same
// database transaction as the insert.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	walletRepo      adapter.WalletRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	walletRepo adapter.WalletRepository,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		walletRepo:      walletRepo,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if input.Type != entity.TransactionTypeIncome && input.Type != entity.TransactionTypeExpense {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'income' or 'expense'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if input.Amount.IsNegative() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"transaction amount must not be negative",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	transaction := entity.NewTransaction(
		input.Type,
		input.Amount,
		input.Description,
		input.Category,
		input.WalletID,
		input.Date,
	)

	var wallet *entity.Wallet
	if input.WalletID != nil {
		w, err := uc.walletRepo.FindByID(ctx, *input.WalletID)
		if err != nil {
			if errors.Is(err, domainerror.ErrWalletNotFound) {
				return nil, domainerror.NewTransactionError(
					domainerror.ErrCodeTxnWalletNotFound,
					"wallet not found",
					domainerror.ErrWalletNotFound,
				)
			}
			return nil, fmt.Errorf("failed to find wallet: %w", err)
		}

		ledger.ApplyTransaction(w, transaction)
		wallet = w
	}

	if err := uc.transactionRepo.Create(ctx, transaction, wallet); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{Transaction: transaction}, nil
}
