package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/finly/backend/internal/application/adapter"
	"github.com/finly/backend/internal/domain/entity"
	domainerror "github.com/finly/backend/internal/domain/error"
	"github.com/finly/backend/internal/integration/persistence/model"
)

// stockRepository implements the adapter.StockRepository interface.
type stockRepository struct {
	db *gorm.DB
}

// NewStockRepository creates a new stock repository instance.
func NewStockRepository(db *gorm.DB) adapter.StockRepository {
	return &stockRepository{
		db: db,
	}
}

// List retrieves stocks ordered by start date descending, optionally
// filtered to one wallet.
func (r *stockRepository) List(ctx context.Context, walletID *int64) ([]*entity.Stock, error) {
	query := r.db.WithContext(ctx).Order("start_date DESC")
	if walletID != nil {
		query = query.Where("wallet_id = ?", *walletID)
	}

	var stockModels []model.StockModel
	if err := query.Find(&stockModels).Error; err != nil {
		return nil, err
	}

	stocks := make([]*entity.Stock, len(stockModels))
	for i, sm := range stockModels {
		stocks[i] = sm.ToEntity()
	}
	return stocks, nil
}

// FindByID retrieves a stock by its ID.
func (r *stockRepository) FindByID(ctx context.Context, id int64) (*entity.Stock, error) {
	var stockModel model.StockModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&stockModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrStockNotFound
		}
		return nil, result.Error
	}
	return stockModel.ToEntity(), nil
}

// Create creates a new stock and saves the purchase's wallet mutation
// atomically.
func (r *stockRepository) Create(ctx context.Context, stock *entity.Stock, wallet *entity.Wallet) error {
	stockModel := model.StockFromEntity(stock)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(stockModel).Error; err != nil {
			return err
		}
		if wallet != nil {
			if err := tx.Save(model.WalletFromEntity(wallet)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	stock.ID = stockModel.ID
	return nil
}

// Update updates an existing stock, saving the wallet in the same database
// transaction when one is given.
func (r *stockRepository) Update(ctx context.Context, stock *entity.Stock, wallet *entity.Wallet) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(model.StockFromEntity(stock)).Error; err != nil {
			return err
		}
		if wallet != nil {
			if err := tx.Save(model.WalletFromEntity(wallet)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a stock, saving the wallet in the same database transaction
// when one is given.
func (r *stockRepository) Delete(ctx context.Context, id int64, wallet *entity.Wallet) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.StockModel{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrStockNotFound
		}
		if wallet != nil {
			if err := tx.Save(model.WalletFromEntity(wallet)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
