package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlanType represents the direction of a budget plan category.
type PlanType string

const (
	PlanTypeIncome  PlanType = "income"
	PlanTypeExpense PlanType = "expense"
)

// IsValidPlanType reports whether the given type is a known plan type.
func IsValidPlanType(t PlanType) bool {
	return t == PlanTypeIncome || t == PlanTypeExpense
}

// BudgetPlan represents a named budget category with a planned amount.
type BudgetPlan struct {
	ID        int64
	Name      string
	Value     decimal.Decimal
	Type      PlanType
	Icon      *string
	CreatedAt time.Time
}
