package adapter

import (
	"context"

	"github.com/finly/backend/internal/domain/entity"
)

// AssetRepository defines the interface for asset persistence operations.
type AssetRepository interface {
	// List retrieves all assets ordered by date descending, optionally
	// filtered by type.
	List(ctx context.Context, assetType *entity.AssetType) ([]*entity.Asset, error)

	// FindByID retrieves an asset by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Asset, error)

	// Create persists a new asset.
	Create(ctx context.Context, asset *entity.Asset) error

	// Update updates an existing asset.
	Update(ctx context.Context, asset *entity.Asset) error

	// Delete removes an asset.
	Delete(ctx context.Context, id int64) error
}
