package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/finly/backend/internal/application/usecase/asset"
	"github.com/finly/backend/internal/domain/entity"
	domainerror "github.com/finly/backend/internal/domain/error"
	"github.com/finly/backend/internal/integration/entrypoint/dto"
)

// AssetController handles asset endpoints.
type AssetController struct {
	listUseCase   *asset.ListAssetsUseCase
	createUseCase *asset.CreateAssetUseCase
	updateUseCase *asset.UpdateAssetUseCase
	deleteUseCase *asset.DeleteAssetUseCase
	totalsUseCase *asset.GetAssetTotalsUseCase
}

// NewAssetController creates a new asset controller instance.
func NewAssetController(
	listUseCase *asset.ListAssetsUseCase,
	createUseCase *asset.CreateAssetUseCase,
	updateUseCase *asset.UpdateAssetUseCase,
	deleteUseCase *asset.DeleteAssetUseCase,
	totalsUseCase *asset.GetAssetTotalsUseCase,
) *AssetController {
	return &AssetController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		totalsUseCase: totalsUseCase,
	}
}

// List handles GET /assets requests. An optional type query parameter
// restricts the listing to one asset type.
func (c *AssetController) List(ctx *gin.Context) {
	input := asset.ListAssetsInput{}

	if typeStr := ctx.Query("type"); typeStr != "" {
		assetType := entity.AssetType(typeStr)
		input.Type = &assetType
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAssetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAssetListResponse(output.Assets))
}

// Create handles POST /assets requests.
func (c *AssetController) Create(ctx *gin.Context) {
	var req dto.CreateAssetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingAssetFields),
		})
		return
	}

	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingAssetFields),
		})
		return
	}

	input := asset.CreateAssetInput{
		Type:     entity.AssetType(req.Type),
		Name:     req.Name,
		Amount:   decimal.NewFromFloat(req.Amount),
		Value:    decimal.NewFromFloat(req.Value),
		Currency: req.Currency,
		Notes:    req.Notes,
		Date:     date,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAssetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAssetResponse(output.Asset))
}

// Update handles PUT /assets/:id requests.
func (c *AssetController) Update(ctx *gin.Context) {
	assetID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateAssetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := asset.UpdateAssetInput{
		AssetID:  assetID,
		Name:     req.Name,
		Amount:   floatPtrToDecimal(req.Amount),
		Value:    floatPtrToDecimal(req.Value),
		Currency: req.Currency,
		Notes:    req.Notes,
	}

	if req.Type != nil {
		assetType := entity.AssetType(*req.Type)
		input.Type = &assetType
	}

	if req.Date != nil {
		date, err := time.Parse(dto.DateLayout, *req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format. Use YYYY-MM-DD",
			})
			return
		}
		input.Date = &date
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAssetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAssetResponse(output.Asset))
}

// Delete handles DELETE /assets/:id requests.
func (c *AssetController) Delete(ctx *gin.Context) {
	assetID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), asset.DeleteAssetInput{
		AssetID: assetID,
	})
	if err != nil {
		c.handleAssetError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Totals handles GET /assets/summary/totals requests.
func (c *AssetController) Totals(ctx *gin.Context) {
	output, err := c.totalsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute asset totals",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAssetTotalsResponse(output.Totals))
}

// handleAssetError maps asset errors to HTTP responses.
func (c *AssetController) handleAssetError(ctx *gin.Context, err error) {
	var astErr *domainerror.AssetError
	if errors.As(err, &astErr) {
		ctx.JSON(c.getStatusCodeForAssetError(astErr.Code), dto.ErrorResponse{
			Error: astErr.Message,
			Code:  string(astErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForAssetError maps asset error codes to HTTP status codes.
func (c *AssetController) getStatusCodeForAssetError(code domainerror.AssetErrorCode) int {
	switch code {
	case domainerror.ErrCodeAssetNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidAssetType,
		domainerror.ErrCodeMissingAssetFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
