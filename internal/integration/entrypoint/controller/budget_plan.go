package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/finly/backend/internal/application/usecase/budgetplan"
	"github.com/finly/backend/internal/domain/entity"
	domainerror "github.com/finly/backend/internal/domain/error"
	"github.com/finly/backend/internal/integration/entrypoint/dto"
)

// BudgetPlanController handles budget plan endpoints.
type BudgetPlanController struct {
	listUseCase   *budgetplan.ListBudgetPlansUseCase
	createUseCase *budgetplan.CreateBudgetPlanUseCase
	updateUseCase *budgetplan.UpdateBudgetPlanUseCase
	deleteUseCase *budgetplan.DeleteBudgetPlanUseCase
}

// NewBudgetPlanController creates a new budget plan controller instance.
func NewBudgetPlanController(
	listUseCase *budgetplan.ListBudgetPlansUseCase,
	createUseCase *budgetplan.CreateBudgetPlanUseCase,
	updateUseCase *budgetplan.UpdateBudgetPlanUseCase,
	deleteUseCase *budgetplan.DeleteBudgetPlanUseCase,
) *BudgetPlanController {
	return &BudgetPlanController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /budget-plans requests. An optional type query parameter
// restricts the listing to income or expense plans.
func (c *BudgetPlanController) List(ctx *gin.Context) {
	input := budgetplan.ListBudgetPlansInput{}

	if typeStr := ctx.Query("type"); typeStr != "" {
		planType := entity.PlanType(typeStr)
		input.Type = &planType
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetPlanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetPlanListResponse(output.Plans))
}

// Create handles POST /budget-plans requests.
func (c *BudgetPlanController) Create(ctx *gin.Context) {
	var req dto.CreateBudgetPlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingBudgetPlanFields),
		})
		return
	}

	input := budgetplan.CreateBudgetPlanInput{
		Name:  req.Name,
		Value: decimal.NewFromFloat(req.Value),
		Type:  entity.PlanType(req.Type),
		Icon:  req.Icon,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetPlanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBudgetPlanResponse(output.Plan))
}

// Update handles PUT /budget-plans/:id requests.
func (c *BudgetPlanController) Update(ctx *gin.Context) {
	planID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateBudgetPlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := budgetplan.UpdateBudgetPlanInput{
		PlanID: planID,
		Name:   req.Name,
		Value:  floatPtrToDecimal(req.Value),
		Icon:   req.Icon,
	}

	if req.Type != nil {
		planType := entity.PlanType(*req.Type)
		input.Type = &planType
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetPlanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetPlanResponse(output.Plan))
}

// Delete handles DELETE /budget-plans/:id requests.
func (c *BudgetPlanController) Delete(ctx *gin.Context) {
	planID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), budgetplan.DeleteBudgetPlanInput{
		PlanID: planID,
	})
	if err != nil {
		c.handleBudgetPlanError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleBudgetPlanError maps budget plan errors to HTTP responses.
func (c *BudgetPlanController) handleBudgetPlanError(ctx *gin.Context, err error) {
	var bgtErr *domainerror.BudgetPlanError
	if errors.As(err, &bgtErr) {
		ctx.JSON(c.getStatusCodeForBudgetPlanError(bgtErr.Code), dto.ErrorResponse{
			Error: bgtErr.Message,
			Code:  string(bgtErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForBudgetPlanError maps budget plan error codes to HTTP status codes.
func (c *BudgetPlanController) getStatusCodeForBudgetPlanError(code domainerror.BudgetPlanErrorCode) int {
	switch code {
	case domainerror.ErrCodeBudgetPlanNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidPlanType,
		domainerror.ErrCodeMissingBudgetPlanFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
