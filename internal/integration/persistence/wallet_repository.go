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

// walletRepository implements the adapter.WalletRepository interface.
type walletRepository struct {
	db *gorm.DB
}

// NewWalletRepository creates a new wallet repository instance.
func NewWalletRepository(db *gorm.DB) adapter.WalletRepository {
	return &walletRepository{
		db: db,
	}
}

// List retrieves all wallets, newest first.
func (r *walletRepository) List(ctx context.Context) ([]*entity.Wallet, error) {
	var walletModels []model.WalletModel
	result := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&walletModels)
	if result.Error != nil {
		return nil, result.Error
	}

	wallets := make([]*entity.Wallet, len(walletModels))
	for i, wm := range walletModels {
		wallets[i] = wm.ToEntity()
	}
	return wallets, nil
}

// FindByID retrieves a wallet by its ID.
func (r *walletRepository) FindByID(ctx context.Context, id int64) (*entity.Wallet, error) {
	var walletModel model.WalletModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&walletModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrWalletNotFound
		}
		return nil, result.Error
	}
	return walletModel.ToEntity(), nil
}

// Create creates a new wallet in the database.
func (r *walletRepository) Create(ctx context.Context, wallet *entity.Wallet) error {
	walletModel := model.WalletFromEntity(wallet)
	if err := r.db.WithContext(ctx).Create(walletModel).Error; err != nil {
		return err
	}
	wallet.ID = walletModel.ID
	return nil
}

// Update updates an existing wallet.
func (r *walletRepository) Update(ctx context.Context, wallet *entity.Wallet) error {
	result := r.db.WithContext(ctx).Save(model.WalletFromEntity(wallet))
	return result.Error
}

// Delete removes a wallet.
func (r *walletRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&model.WalletModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrWalletNotFound
	}
	return nil
}

// SaveTransfer persists both wallets and the transfer's transaction legs
// atomically.
func (r *walletRepository) SaveTransfer(ctx context.Context, from, to *entity.Wallet, legs []*entity.Transaction) error {
	legModels := make([]*model.TransactionModel, len(legs))
	for i, leg := range legs {
		legModels[i] = model.TransactionFromEntity(leg)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(model.WalletFromEntity(from)).Error; err != nil {
			return err
		}
		if err := tx.Save(model.WalletFromEntity(to)).Error; err != nil {
			return err
		}
		for _, legModel := range legModels {
			if err := tx.Create(legModel).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	for i, leg := range legs {
		leg.ID = legModels[i].ID
	}
	return nil
}
