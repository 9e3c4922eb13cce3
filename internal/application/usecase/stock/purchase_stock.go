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

// PurchaseStockInput represents the input for recording a stock purchase.
type PurchaseStockInput struct {
	WalletID   int64
	Code       string
	Volume     decimal.Decimal
	StartPrice decimal.Decimal
	StartDate  time.Time
	Margin     *decimal.Decimal
}

// PurchaseStockOutput represents the output of a stock purchase.
type PurchaseStockOutput struct {
	Stock *entity.Stock
}

// PurchaseStockUseCase records a new stock position and moves its cost from
// the wallet's cash into investment value, both in one database transaction.
type PurchaseStockUseCase struct {
	stockRepo  adapter.StockRepository
	walletRepo adapter.WalletRepository
}

// NewPurchaseStockUseCase creates a new PurchaseStockUseCase instance.
func NewPurchaseStockUseCase(
	stockRepo adapter.StockRepository,
	walletRepo adapter.WalletRepository,
) *PurchaseStockUseCase {
	return &PurchaseStockUseCase{
		stockRepo:  stockRepo,
		walletRepo: walletRepo,
	}
}

// Execute performs the stock purchase.
func (uc *PurchaseStockUseCase) Execute(ctx context.Context, input PurchaseStockInput) (*PurchaseStockOutput, error) {
	if input.Volume.IsNegative() {
		return nil, domainerror.NewStockError(
			domainerror.ErrCodeInvalidStockVolume,
			"stock volume must not be negative",
			domainerror.ErrInvalidStockVolume,
		)
	}
	if input.StartPrice.IsNegative() {
		return nil, domainerror.NewStockError(
			domainerror.ErrCodeInvalidStockPrice,
			"stock price must not be negative",
			domainerror.ErrInvalidStockPrice,
		)
	}

	wallet, err := uc.walletRepo.FindByID(ctx, input.WalletID)
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

	if wallet.Type != entity.WalletTypeStock {
		return nil, domainerror.NewStockError(
			domainerror.ErrCodeStockWalletRequired,
			"stock can only be added to a Stock type wallet",
			domainerror.ErrStockWalletRequired,
		)
	}

	if err := ledger.ApplyStockPurchase(wallet, input.Volume, input.StartPrice); err != nil {
		return nil, err
	}

	stock := entity.NewStock(
		wallet.ID,
		input.Code,
		input.Volume,
		input.StartPrice,
		input.StartDate,
		input.Margin,
	)

	if err := uc.stockRepo.Create(ctx, stock, wallet); err != nil {
		return nil, fmt.Errorf("failed to create stock: %w", err)
	}

	return &PurchaseStockOutput{Stock: stock}, nil
}
