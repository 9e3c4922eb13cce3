package stock

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

// SellStockInput represents the input for selling a held position.
type SellStockInput struct {
	StockID   int64
	SellPrice decimal.Decimal
	SellDate  time.Time
}

// SellStockOutput represents the output of a stock sale.
type SellStockOutput struct {
	Stock *entity.Stock
}

// SellStockUseCase closes a held position: proceeds at the sell price return
// to the wallet's cash and the purchase basis leaves investment value, both
// in one database transaction with the position update.
type SellStockUseCase struct {
	stockRepo  adapter.StockRepository
	walletRepo adapter.WalletRepository
}

// NewSellStockUseCase creates a new SellStockUseCase instance.
func NewSellStockUseCase(
	stockRepo adapter.StockRepository,
	walletRepo adapter.WalletRepository,
) *SellStockUseCase {
	return &SellStockUseCase{
		stockRepo:  stockRepo,
		walletRepo: walletRepo,
	}
}

// Execute performs the stock sale.
func (uc *SellStockUseCase) Execute(ctx context.Context, input SellStockInput) (*SellStockOutput, error) {
	if input.SellPrice.IsNegative() {
		return nil, domainerror.NewStockError(
			domainerror.ErrCodeInvalidStockPrice,
			"sell price must not be negative",
			domainerror.ErrInvalidStockPrice,
		)
	}

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

	wallet, err := uc.walletRepo.FindByID(ctx, stock.WalletID)
	if err != nil {
		if errors.Is(err, domainerror.ErrWalletNotFound) {
			return nil, domainerror.NewStockError(
				domainerror.ErrCodeStockWalletNotFound,
				"wallet not found",
				domainerror.ErrWalletNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find wallet: %w", err)
	}

	if err := ledger.ApplyStockSale(stock, wallet, input.SellPrice, input.SellDate); err != nil {
		return nil, err
	}

	if err := uc.stockRepo.Update(ctx, stock, wallet); err != nil {
		return nil, fmt.Errorf("failed to update stock: %w", err)
	}

	return &SellStockOutput{Stock: stock}, nil
}
