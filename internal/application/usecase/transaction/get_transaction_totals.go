package transaction

import (
	"context"
	"fmt"

	"github.com/finly/backend/internal/application/adapter"
	"github.com/finly/backend/internal/domain/ledger"
)

// GetTransactionTotalsOutput represents the output of the totals summary.
type GetTransactionTotalsOutput struct {
	Totals ledger.TransactionTotals
}

// GetTransactionTotalsUseCase computes income/expense totals over all
// recorded transactions.
type GetTransactionTotalsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetTransactionTotalsUseCase creates a new GetTransactionTotalsUseCase instance.
func NewGetTransactionTotalsUseCase(transactionRepo adapter.TransactionRepository) *GetTransactionTotalsUseCase {
	return &GetTransactionTotalsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute computes the transaction totals.
func (uc *GetTransactionTotalsUseCase) Execute(ctx context.Context) (*GetTransactionTotalsOutput, error) {
	transactions, err := uc.transactionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &GetTransactionTotalsOutput{
		Totals: ledger.SummarizeTransactions(transactions),
	}, nil
}
