package budgetplan

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finly/backend/internal/application/adapter"
	"github.com/finly/backend/internal/domain/entity"
	domainerror "github.com/finly/backend/internal/domain/error"
)

// UpdateBudgetPlanInput represents the input for budget plan updates.
// Nil fields are left untouched.
type UpdateBudgetPlanInput struct {
	PlanID int64
	Name   *string
	Value  *decimal.Decimal
	Type   *entity.PlanType
	Icon   *string
}

// UpdateBudgetPlanOutput represents the output of budget plan updates.
type UpdateBudgetPlanOutput struct {
	Plan *entity.BudgetPlan
}

// UpdateBudgetPlanUseCase handles budget plan update logic.
type UpdateBudgetPlanUseCase struct {
	planRepo adapter.BudgetPlanRepository
}

// NewUpdateBudgetPlanUseCase creates a new UpdateBudgetPlanUseCase instance.
func NewUpdateBudgetPlanUseCase(planRepo adapter.BudgetPlanRepository) *UpdateBudgetPlanUseCase {
	return &UpdateBudgetPlanUseCase{
		planRepo: planRepo,
	}
}

// Execute performs the budget plan update.
func (uc *UpdateBudgetPlanUseCase) Execute(ctx context.Context, input UpdateBudgetPlanInput) (*UpdateBudgetPlanOutput, error) {
	plan, err := uc.planRepo.FindByID(ctx, input.PlanID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetPlanNotFound) {
			return nil, domainerror.NewBudgetPlanError(
				domainerror.ErrCodeBudgetPlanNotFound,
				"budget plan not found",
				domainerror.ErrBudgetPlanNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find budget plan: %w", err)
	}

	if input.Type != nil {
		if !entity.IsValidPlanType(*input.Type) {
			return nil, invalidPlanType()
		}
		plan.Type = *input.Type
	}
	if input.Name != nil {
		plan.Name = *input.Name
	}
	if input.Value != nil {
		plan.Value = *input.Value
	}
	if input.Icon != nil {
		plan.Icon = input.Icon
	}

	if err := uc.planRepo.Update(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to update budget plan: %w", err)
	}

	return &UpdateBudgetPlanOutput{Plan: plan}, nil
}
