package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/finly/backend/internal/application/adapter"
	"github.com/finly/backend/internal/domain/entity"
	domainerror "github.com/finly/backend/internal/domain/error"
	"github.com/finly/backend/internal/integration/persistence/model"
)

// budgetPlanRepository implements the adapter.BudgetPlanRepository interface.
type budgetPlanRepository struct {
	db *gorm.DB
}

// NewBudgetPlanRepository creates a new budget plan repository instance.
func NewBudgetPlanRepository(db *gorm.DB) adapter.BudgetPlanRepository {
	return &budgetPlanRepository{
		db: db,
	}
}

// List retrieves budget plans, optionally filtered by type.
func (r *budgetPlanRepository) List(ctx context.Context, planType *entity.PlanType) ([]*entity.BudgetPlan, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if planType != nil {
		query = query.Where("type = ?", string(*planType))
	}

	var planModels []model.BudgetPlanModel
	if err := query.Find(&planModels).Error; err != nil {
		return nil, err
	}

	plans := make([]*entity.BudgetPlan, len(planModels))
	for i, pm := range planModels {
		plans[i] = pm.ToEntity()
	}
	return plans, nil
}

// FindByID retrieves a budget plan by its ID.
func (r *budgetPlanRepository) FindByID(ctx context.Context, id int64) (*entity.BudgetPlan, error) {
	var planModel model.BudgetPlanModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&planModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBudgetPlanNotFound
		}
		return nil, result.Error
	}
	return planModel.ToEntity(), nil
}

// Create creates a new budget plan in the database.
func (r *budgetPlanRepository) Create(ctx context.Context, plan *entity.BudgetPlan) error {
	planModel := model.BudgetPlanFromEntity(plan)
	if err := r.db.WithContext(ctx).Create(planModel).Error; err != nil {
		return err
	}
	plan.ID = planModel.ID
	return nil
}

// Update updates an existing budget plan.
func (r *budgetPlanRepository) Update(ctx context.Context, plan *entity.BudgetPlan) error {
	result := r.db.WithContext(ctx).Save(model.BudgetPlanFromEntity(plan))
	return result.Error
}

// Delete removes a budget plan.
func (r *budgetPlanRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&model.BudgetPlanModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBudgetPlanNotFound
	}
	return nil
}
