package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finly/backend/internal/domain/entity"
)

// BudgetPlanModel represents the budget_plans table in the database.
type BudgetPlanModel struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	Name      string          `gorm:"type:varchar(100);not null"`
	Value     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Type      string          `gorm:"type:varchar(10);not null;index"`
	Icon      *string         `gorm:"type:varchar(50)"`
	CreatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BudgetPlanModel.
func (BudgetPlanModel) TableName() string {
	return "budget_plans"
}

// ToEntity converts a BudgetPlanModel to a domain BudgetPlan entity.
func (m *BudgetPlanModel) ToEntity() *entity.BudgetPlan {
	return &entity.BudgetPlan{
		ID:        m.ID,
		Name:      m.Name,
		Value:     m.Value,
		Type:      entity.PlanType(m.Type),
		Icon:      m.Icon,
		CreatedAt: m.CreatedAt,
	}
}

// BudgetPlanFromEntity creates a BudgetPlanModel from a domain BudgetPlan entity.
func BudgetPlanFromEntity(plan *entity.BudgetPlan) *BudgetPlanModel {
	return &BudgetPlanModel{
		ID:        plan.ID,
		Name:      plan.Name,
		Value:     plan.Value,
		Type:      string(plan.Type),
		Icon:      plan.Icon,
		CreatedAt: plan.CreatedAt,
	}
}
