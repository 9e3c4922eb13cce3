package dto

import (
	"time"

	"github.com/finly/backend/internal/domain/entity"
)

// CreateBudgetPlanRequest represents the request body for budget plan creation.
type CreateBudgetPlanRequest struct {
	Name  string  `json:"name" binding:"required,max=100"`
	Value float64 `json:"value" binding:"required,gte=0"`
	Type  string  `json:"type" binding:"required,oneof=income expense"`
	Icon  *string `json:"icon,omitempty" binding:"omitempty,max=50"`
}

// UpdateBudgetPlanRequest represents the request body for budget plan update.
type UpdateBudgetPlanRequest struct {
	Name  *string  `json:"name,omitempty" binding:"omitempty,max=100"`
	Value *float64 `json:"value,omitempty" binding:"omitempty,gte=0"`
	Type  *string  `json:"type,omitempty" binding:"omitempty,oneof=income expense"`
	Icon  *string  `json:"icon,omitempty" binding:"omitempty,max=50"`
}

// BudgetPlanResponse represents a single budget plan in API responses.
type BudgetPlanResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Value     float64   `json:"value"`
	Type      string    `json:"type"`
	Icon      *string   `json:"icon,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ToBudgetPlanResponse converts a domain BudgetPlan entity to a response DTO.
func ToBudgetPlanResponse(plan *entity.BudgetPlan) BudgetPlanResponse {
	return BudgetPlanResponse{
		ID:        plan.ID,
		Name:      plan.Name,
		Value:     plan.Value.InexactFloat64(),
		Type:      string(plan.Type),
		Icon:      plan.Icon,
		CreatedAt: plan.CreatedAt,
	}
}

// ToBudgetPlanListResponse converts budget plans to a list of response DTOs.
func ToBudgetPlanListResponse(plans []*entity.BudgetPlan) []BudgetPlanResponse {
	responses := make([]BudgetPlanResponse, len(plans))
	for i, p := range plans {
		responses[i] = ToBudgetPlanResponse(p)
	}
	return responses
}
