package asset

import (
	"context"
	"errors"
	"fmt"

	"github.com/finly/backend/internal/application/adapter"
	domainerror "github.com/finly/backend/internal/domain/error"
)

// DeleteAssetInput represents the input for asset deletion.
type DeleteAssetInput struct {
	AssetID int64
}

// DeleteAssetOutput represents the output of asset deletion.
type DeleteAssetOutput struct {
	Success bool
}

// DeleteAssetUseCase handles asset deletion logic.
type DeleteAssetUseCase struct {
	assetRepo adapter.AssetRepository
}

// NewDeleteAssetUseCase creates a new DeleteAssetUseCase instance.
func NewDeleteAssetUseCase(assetRepo adapter.AssetRepository) *DeleteAssetUseCase {
	return &DeleteAssetUseCase{
		assetRepo: assetRepo,
	}
}

// Execute performs the asset deletion.
func (uc *DeleteAssetUseCase) Execute(ctx context.Context, input DeleteAssetInput) (*DeleteAssetOutput, error) {
	if _, err := uc.assetRepo.FindByID(ctx, input.AssetID); err != nil {
		if errors.Is(err, domainerror.ErrAssetNotFound) {
			return nil, domainerror.NewAssetError(
				domainerror.ErrCodeAssetNotFound,
				"asset not found",
				domainerror.ErrAssetNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find asset: %w", err)
	}

	if err := uc.assetRepo.Delete(ctx, input.AssetID); err != nil {
		return nil, fmt.Errorf("failed to delete asset: %w", err)
	}

	return &DeleteAssetOutput{Success: true}, nil
}
