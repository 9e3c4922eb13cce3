// Package asset contains portfolio asset use cases.
package asset

import (
	"context"
	"fmt"

	"github.com/finly/backend/internal/application/adapter"
	"github.com/finly/backend/internal/domain/entity"
)

// ListAssetsInput represents the input for asset listing.
type ListAssetsInput struct {
	Type *entity.AssetType
}

// ListAssetsOutput represents the output of asset listing.
type ListAssetsOutput struct {
	Assets []*entity.Asset
}

// ListAssetsUseCase handles asset listing logic.
type ListAssetsUseCase struct {
	assetRepo adapter.AssetRepository
}

// NewListAssetsUseCase creates a new ListAssetsUseCase instance.
func NewListAssetsUseCase(assetRepo adapter.AssetRepository) *ListAssetsUseCase {
	return &ListAssetsUseCase{
		assetRepo: assetRepo,
	}
}

// Execute retrieves assets ordered by date descending, optionally filtered
// by type.
func (uc *ListAssetsUseCase) Execute(ctx context.Context, input ListAssetsInput) (*ListAssetsOutput, error) {
	if input.Type != nil && !entity.IsValidAssetType(*input.Type) {
		return nil, domainInvalidAssetType()
	}

	assets, err := uc.assetRepo.List(ctx, input.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	return &ListAssetsOutput{Assets: assets}, nil
}
