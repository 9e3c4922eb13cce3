package stock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finly/backend/internal/application/adapter"
	"github.com/finly/backend/internal/domain/entity"
	domainerror "github.com/finly/backend/internal/domain/error"
	"github.com/finly/backend/internal/domain/ledger"
)

// DeleteStockInput represents the input for stock deletion.
type DeleteStockInput struct {
	StockID int64
}

// DeleteStockOutput represents the output of stock deletion.
type DeleteStockOutput struct {
	Success bool
}

// DeleteStockUseCase removes a stock record. A still-held position is
// liquidated at its purchase price first, so the wallet's cash gets the
// basis back and investment value shrinks by the same amount.
type DeleteStockUseCase struct {
	stockRepo  adapter.StockRepository
	walletRepo adapter.WalletRepository
}

// NewDeleteStockUseCase creates a new DeleteStockUseCase instance.
func NewDeleteStockUseCase(
	stockRepo adapter.StockRepository,
	walletRepo adapter.WalletRepository,
) *DeleteStockUseCase {
	return &DeleteStockUseCase{
		stockRepo:  stockRepo,
		walletRepo: walletRepo,
	}
}

// Execute performs the stock deletion.
func (uc *DeleteStockUseCase) Execute(ctx context.Context, input DeleteStockInput) (*DeleteStockOutput, error) {
	stock, err := uc.stockRepo.FindByID(ctx, input.StockID)
	if err != nil {
		if errors.Is(err, domainerror.ErrStockNotFound) {
			return nil, domainerror.NewStockError(
				domainerror.ErrCodeStockNotFound,
				"stock not found",
				domainerror.ErrStockNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find stock: %w", err)
	}

	var wallet *entity.Wallet
	if stock.IsHolding {
		w, err := uc.walletRepo.FindByID(ctx, stock.WalletID)
		if err != nil && !errors.Is(err, domainerror.ErrWalletNotFound) {
			return nil, fmt.Errorf("failed to find wallet: %w", err)
		}
		if w != nil {
			// Liquidate at cost; the record is gone after this anyway.
			if err := ledger.ApplyStockSale(stock, w, stock.StartPrice, time.Now().UTC()); err != nil {
				return nil, err
			}
			wallet = w
		}
	}

	if err := uc.stockRepo.Delete(ctx, stock.ID, wallet); err != nil {
		return nil, fmt.Errorf("failed to delete stock: %w", err)
	}

	return &DeleteStockOutput{Success: true}, nil
}
