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
)

// UpdateStockInput represents the input for correcting a stock record.
// Nil fields are left untouched.
type UpdateStockInput struct {
	StockID    int64
	Code       *string
	Volume     *decimal.Decimal
	StartPrice *decimal.Decimal
	StartDate  *time.Time
	Margin     *decimal.Decimal
}

// UpdateStockOutput represents the output of a stock update.
type UpdateStockOutput struct {
	Stock *entity.Stock
}

// UpdateStockUseCase patches a stock record without touching its wallet.
// Selling goes through SellStockUseCase, which moves money.
type UpdateStockUseCase struct {
	stockRepo adapter.StockRepository
}

// NewUpdateStockUseCase creates a new UpdateStockUseCase instance.
func NewUpdateStockUseCase(stockRepo adapter.StockRepository) *UpdateStockUseCase {
	return &UpdateStockUseCase{
		stockRepo: stockRepo,
	}
}

// Execute performs the stock update.
func (uc *UpdateStockUseCase) Execute(ctx context.Context, input UpdateStockInput) (*UpdateStockOutput, error) {
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

	if input.Volume != nil && input.Volume.IsNegative() {
		return nil, domainerror.NewStockError(
			domainerror.ErrCodeInvalidStockVolume,
			"stock volume must not be negative",
			domainerror.ErrInvalidStockVolume,
		)
	}
	if input.StartPrice != nil && input.StartPrice.IsNegative() {
		return nil, domainerror.NewStockError(
			domainerror.ErrCodeInvalidStockPrice,
			"stock price must not be negative",
			domainerror.ErrInvalidStockPrice,
		)
	}

	if input.Code != nil {
		stock.Code = *input.Code
	}
	if input.Volume != nil {
		stock.Volume = *input.Volume
	}
	if input.StartPrice != nil {
		stock.StartPrice = *input.StartPrice
	}
	if input.StartDate != nil {
		stock.StartDate = *input.StartDate
	}
	if input.Margin != nil {
		stock.Margin = input.Margin
	}

	if err := uc.stockRepo.Update(ctx, stock, nil); err != nil {
		return nil, fmt.Errorf("failed to update stock: %w", err)
	}

	return &UpdateStockOutput{Stock: stock}, nil
}
