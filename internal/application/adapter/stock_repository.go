package adapter

import (
	"context"

	"github.com/finly/backend/internal/domain/entity"
)

// StockRepository defines the interface for stock persistence operations.
type StockRepository interface {
	// List retrieves all stocks ordered by start date descending, optionally
	// filtered to one wallet.
	List(ctx context.Context, walletID *int64) ([]*entity.Stock, error)

	// FindByID retrieves a stock by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Stock, error)

	// Create persists a new stock and the purchase's wallet mutation in a
	// single database transaction.
	Create(ctx context.Context, stock *entity.Stock, wallet *entity.Wallet) error

	// Update updates an existing stock. When wallet is non-nil (a sale) the
	// wallet's updated balance fields are saved in the same database
	// transaction.
	Update(ctx context.Context, stock *entity.Stock, wallet *entity.Wallet) error

	// Delete removes a stock. When wallet is non-nil the wallet's updated
	// balance fields are saved in the same database transaction.
	Delete(ctx context.Context, id int64, wallet *entity.Wallet) error
}
