// Package budgetplan contains budget plan use cases.
package budgetplan

import (
	"context"
	"fmt"

	"github.com/finly/backend/internal/application/adapter"
	"github.com/finly/backend/internal/domain/entity"
)

// ListBudgetPlansInput represents the input for budget plan listing.
type ListBudgetPlansInput struct {
	Type *entity.PlanType
}

// ListBudgetPlansOutput represents the output of budget plan listing.
type ListBudgetPlansOutput struct {
	Plans []*entity.BudgetPlan
}

// ListBudgetPlansUseCase handles budget plan listing logic.
type ListBudgetPlansUseCase struct {
	planRepo adapter.BudgetPlanRepository
}

// NewListBudgetPlansUseCase creates a new ListBudgetPlansUseCase instance.
func NewListBudgetPlansUseCase(planRepo adapter.BudgetPlanRepository) *ListBudgetPlansUseCase {
	return &ListBudgetPlansUseCase{
		planRepo: planRepo,
	}
}

// Execute retrieves budget plans, optionally filtered by type.
func (uc *ListBudgetPlansUseCase) Execute(ctx context.Context, input ListBudgetPlansInput) (*ListBudgetPlansOutput, error) {
	if input.Type != nil && !entity.IsValidPlanType(*input.Type) {
		return nil, invalidPlanType()
	}

	plans, err := uc.planRepo.List(ctx, input.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to list budget plans: %w", err)
	}

	return &ListBudgetPlansOutput{Plans: plans}, nil
}
