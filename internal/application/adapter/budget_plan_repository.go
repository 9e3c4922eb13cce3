package adapter

import (
	"context"

	"github.com/finly/backend/internal/domain/entity"
)

// BudgetPlanRepository defines the interface for budget plan persistence operations.
type BudgetPlanRepository interface {
	// List retrieves all budget plans, optionally filtered by plan type.
	List(ctx context.Context, planType *entity.PlanType) ([]*entity.BudgetPlan, error)

	// FindByID retrieves a budget plan by its ID.
	FindByID(ctx context.Context, id int64) (*entity.BudgetPlan, error)

	// Create persists a new budget plan.
	Create(ctx context.Context, plan *entity.BudgetPlan) error

	// Update updates an existing budget plan.
	Update(ctx context.Context, plan *entity.BudgetPlan) error

	// Delete removes a budget plan.
	Delete(ctx context.Context, id int64) error
}
