package adapter

import (
	"context"

	"github.com/finly/backend/internal/domain/entity"
)

// WalletRepository defines the interface for wallet persistence operations.
type WalletRepository interface {
	// List retrieves all wallets, newest first.
	List(ctx context.Context) ([]*entity.Wallet, error)

	// FindByID retrieves a wallet by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Wallet, error)

	// Create persists a new wallet.
	Create(ctx context.Context, wallet *entity.Wallet) error

	// Update updates an existing wallet.
	Update(ctx context.Context, wallet *entity.Wallet) error

	// Delete removes a wallet.
	Delete(ctx context.Context, id int64) error

	// SaveTransfer persists both sides of a wallet-to-wallet transfer plus
	// the paired transaction legs in a single database transaction: either
	// both balances update or neither does.
	SaveTransfer(ctx context.Context, from, to *entity.Wallet, legs []*entity.Transaction) error
}
