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

// assetRepository implements the adapter.AssetRepository interface.
type assetRepository struct {
	db *gorm.DB
}

// NewAssetRepository creates a new asset repository instance.
func NewAssetRepository(db *gorm.DB) adapter.AssetRepository {
	return &assetRepository{
		db: db,
	}
}

// List retrieves assets ordered by date descending, optionally filtered by type.
func (r *assetRepository) List(ctx context.Context, assetType *entity.AssetType) ([]*entity.Asset, error) {
	query := r.db.WithContext(ctx).Order("date DESC")
	if assetType != nil {
		query = query.Where("type = ?", string(*assetType))
	}

	var assetModels []model.AssetModel
	if err := query.Find(&assetModels).Error; err != nil {
		return nil, err
	}

	assets := make([]*entity.Asset, len(assetModels))
	for i, am := range assetModels {
		assets[i] = am.ToEntity()
	}
	return assets, nil
}

// FindByID retrieves an asset by its ID.
func (r *assetRepository) FindByID(ctx context.Context, id int64) (*entity.Asset, error) {
	var assetModel model.AssetModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&assetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAssetNotFound
		}
		return nil, result.Error
	}
	return assetModel.ToEntity(), nil
}

// Create creates a new asset in the database.
func (r *assetRepository) Create(ctx context.Context, asset *entity.Asset) error {
	assetModel := model.AssetFromEntity(asset)
	if err := r.db.WithContext(ctx).Create(assetModel).Error; err != nil {
		return err
	}
	asset.ID = assetModel.ID
	return nil
}

// Update updates an existing asset.
func (r *assetRepository) Update(ctx context.Context, asset *entity.Asset) error {
	result := r.db.WithContext(ctx).Save(model.AssetFromEntity(asset))
	return result.Error
}

// Delete removes an asset.
func (r *assetRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&model.AssetModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrAssetNotFound
	}
	return nil
}
