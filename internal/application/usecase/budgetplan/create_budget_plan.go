package budgetplan

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finly/backend/internal/application/adapter"
	"github.com/finly/backend/internal/domain/entity"
	domainerror "github.com/finly/backend/internal/domain/error"
)

// CreateBudgetPlanInput represents the input for budget plan creation.
type CreateBudgetPlanInput struct {
	Name  string
	Value decimal.Decimal
	Type  entity.PlanType
	Icon  *string
}

// CreateBudgetPlanOutput represents the output of budget plan creation.
type CreateBudgetPlanOutput struct {
	Plan *entity.BudgetPlan
}

// CreateBudgetPlanUseCase handles budget plan creation logic.
type CreateBudgetPlanUseCase struct {
	planRepo adapter.BudgetPlanRepository
}

// NewCreateBudgetPlanUseCase creates a new CreateBudgetPlanUseCase instance.
func NewCreateBudgetPlanUseCase(planRepo adapter.BudgetPlanRepository) *CreateBudgetPlanUseCase {
	return &CreateBudgetPlanUseCase{
		planRepo: planRepo,
	}
}

// Execute performs the budget plan creation.
func (uc *CreateBudgetPlanUseCase) Execute(ctx context.Context, input CreateBudgetPlanInput) (*CreateBudgetPlanOutput, error) {
	if !entity.IsValidPlanType(input.Type) {
		return nil, invalidPlanType()
	}

	plan := &entity.BudgetPlan{
		Name:      input.Name,
		Value:     input.Value,
		Type:      input.Type,
		Icon:      input.Icon,
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.planRepo.Create(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to create budget plan: %w", err)
	}

	return &CreateBudgetPlanOutput{Plan: plan}, nil
}

func invalidPlanType() error {
	return domainerror.NewBudgetPlanError(
		domainerror.ErrCodeInvalidPlanType,
		"plan type must be 'income' or 'expense'",
		domainerror.ErrInvalidPlanType,
	)
}
