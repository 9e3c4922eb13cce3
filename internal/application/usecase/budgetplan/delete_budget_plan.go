package budgetplan

import (
	"context"
	"errors"
	"fmt"

	"github.com/finly/backend/internal/application/adapter"
	domainerror "github.com/finly/backend/internal/domain/error"
)

// DeleteBudgetPlanInput represents the input for budget plan deletion.
type DeleteBudgetPlanInput struct {
	PlanID int64
}

// DeleteBudgetPlanOutput represents the output of budget plan deletion.
type DeleteBudgetPlanOutput struct {
	Success bool
}

// DeleteBudgetPlanUseCase handles budget plan deletion logic.
type DeleteBudgetPlanUseCase struct {
	planRepo adapter.BudgetPlanRepository
}

// NewDeleteBudgetPlanUseCase creates a new DeleteBudgetPlanUseCase instance.
func NewDeleteBudgetPlanUseCase(planRepo adapter.BudgetPlanRepository) *DeleteBudgetPlanUseCase {
	return &DeleteBudgetPlanUseCase{
		planRepo: planRepo,
	}
}

// Execute performs the budget plan deletion.
func (uc *DeleteBudgetPlanUseCase) Execute(ctx context.Context, input DeleteBudgetPlanInput) (*DeleteBudgetPlanOutput, error) {
	if _, err := uc.planRepo.FindByID(ctx, input.PlanID); err != nil {
		if errors.Is(err, domainerror.ErrBudgetPlanNotFound) {
			return nil, domainerror.NewBudgetPlanError(
				domainerror.ErrCodeBudgetPlanNotFound,
				"budget plan not found",
				domainerror.ErrBudgetPlanNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find budget plan: %w", err)
	}

	if err := uc.planRepo.Delete(ctx, input.PlanID); err != nil {
		return nil, fmt.Errorf("failed to delete budget plan: %w", err)
	}

	return &DeleteBudgetPlanOutput{Success: true}, nil
}
