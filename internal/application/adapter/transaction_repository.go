// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finly/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// List retrieves all transactions, newest first.
	List(ctx context.Context) ([]*entity.Transaction, error)

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Transaction, error)

	// Create persists a new transaction. When wallet is non-nil its updated
	// balance fields are saved in the same database transaction, so the
	// record and its wallet side effect commit or roll back together.
	Create(ctx context.Context, transaction *entity.Transaction, wallet *entity.Wallet) error

	// Update updates an existing transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction. When wallet is non-nil its reverted
	// balance fields are saved in the same database transaction.
	Delete(ctx context.Context, id int64, wallet *entity.Wallet) error
}
