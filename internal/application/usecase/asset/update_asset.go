package asset

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

// UpdateAssetInput represents the input for asset updates. Nil fields are
// left untouched.
type UpdateAssetInput struct {
	AssetID  int64
	Type     *entity.AssetType
	Name     *string
	Amount   *decimal.Decimal
	Value    *decimal.Decimal
	Currency *string
	Notes    *string
	Date     *time.Time
}

// UpdateAssetOutput represents the output of asset updates.
type UpdateAssetOutput struct {
	Asset *entity.Asset
}

// UpdateAssetUseCase handles asset update logic.
type UpdateAssetUseCase struct {
	assetRepo adapter.AssetRepository
}

// NewUpdateAssetUseCase creates a new UpdateAssetUseCase instance.
func NewUpdateAssetUseCase(assetRepo adapter.AssetRepository) *UpdateAssetUseCase {
	return &UpdateAssetUseCase{
		assetRepo: assetRepo,
	}
}

// Execute performs the asset update.
func (uc *UpdateAssetUseCase) Execute(ctx context.Context, input UpdateAssetInput) (*UpdateAssetOutput, error) {
	asset, err := uc.assetRepo.FindByID(ctx, input.AssetID)
	if err != nil {
		if errors.Is(err, domainerror.ErrAssetNotFound) {
			return nil, domainerror.NewAssetError(
				domainerror.ErrCodeAssetNotFound,
				"asset not found",
				domainerror.ErrAssetNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find asset: %w", err)
	}

	if input.Type != nil {
		if !entity.IsValidAssetType(*input.Type) {
			return nil, domainInvalidAssetType()
		}
		asset.Type = *input.Type
	}
	if input.Name != nil {
		asset.Name = *input.Name
	}
	if input.Amount != nil {
		asset.Amount = *input.Amount
	}
	if input.Value != nil {
		asset.Value = *input.Value
	}
	if input.Currency != nil {
		asset.Currency = *input.Currency
	}
	if input.Notes != nil {
		asset.Notes = input.Notes
	}
	if input.Date != nil {
		asset.Date = *input.Date
	}

	if err := uc.assetRepo.Update(ctx, asset); err != nil {
		return nil, fmt.Errorf("failed to update asset: %w", err)
	}

	return &UpdateAssetOutput{Asset: asset}, nil
}
