package asset

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finly/backend/internal/application/adapter"
	"github.com/finly/backend/internal/domain/entity"
	domainerror "github.com/finly/backend/internal/domain/error"
)

// CreateAssetInput represents the input for asset creation.
type CreateAssetInput struct {
	Type     entity.AssetType
	Name     string
	Amount   decimal.Decimal
	Value    decimal.Decimal
	Currency string
	Notes    *string
	Date     time.Time
}

// CreateAssetOutput represents the output of asset creation.
type CreateAssetOutput struct {
	Asset *entity.Asset
}

// CreateAssetUseCase handles asset creation logic. Loan assets store their
// value positive; the negation happens at aggregation time.
type CreateAssetUseCase struct {
	assetRepo adapter.AssetRepository
}

// NewCreateAssetUseCase creates a new CreateAssetUseCase instance.
func NewCreateAssetUseCase(assetRepo adapter.AssetRepository) *CreateAssetUseCase {
	return &CreateAssetUseCase{
		assetRepo: assetRepo,
	}
}

// Execute performs the asset creation.
func (uc *CreateAssetUseCase) Execute(ctx context.Context, input CreateAssetInput) (*CreateAssetOutput, error) {
	if !entity.IsValidAssetType(input.Type) {
		return nil, domainInvalidAssetType()
	}

	asset := &entity.Asset{
		Type:      input.Type,
		Name:      input.Name,
		Amount:    input.Amount,
		Value:     input.Value,
		Currency:  input.Currency,
		Notes:     input.Notes,
		Date:      input.Date,
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.assetRepo.Create(ctx, asset); err != nil {
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}

	return &CreateAssetOutput{Asset: asset}, nil
}

func domainInvalidAssetType() error {
	return domainerror.NewAssetError(
		domainerror.ErrCodeInvalidAssetType,
		fmt.Sprintf("asset type must be one of %v", entity.AssetTypes),
		domainerror.ErrInvalidAssetType,
	)
}
