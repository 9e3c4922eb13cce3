package stock

import (
	"context"
	"errors"
	"fmt"

	"github.com/finly/backend/internal/application/adapter"
	"github.com/finly/backend/internal/domain/entity"
	domainerror "github.com/finly/backend/internal/domain/error"
)

// GetStockInput represents the input for fetching a single stock.
type GetStockInput struct {
	StockID int64
}

// GetStockOutput represents the output of fetching a single stock.
type GetStockOutput struct {
	Stock *entity.Stock
}

// GetStockUseCase handles single stock retrieval.
type GetStockUseCase struct {
	stockRepo adapter.StockRepository
}

// NewGetStockUseCase creates a new GetStockUseCase instance.
func NewGetStockUseCase(stockRepo adapter.StockRepository) *GetStockUseCase {
	return &GetStockUseCase{
		stockRepo: stockRepo,
	}
}

// Execute retrieves a stock by ID.
func (uc *GetStockUseCase) Execute(ctx context.Context, input GetStockInput) (*GetStockOutput, error) {
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

	return &GetStockOutput{Stock: stock}, nil
}
