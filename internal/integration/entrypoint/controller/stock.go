package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/finly/backend/internal/application/usecase/stock"
	domainerror "github.com/finly/backend/internal/domain/error"
	"github.com/finly/backend/internal/integration/entrypoint/dto"
)

// StockController handles stock endpoints.
type StockController struct {
	listUseCase     *stock.ListStocksUseCase
	getUseCase      *stock.GetStockUseCase
	purchaseUseCase *stock.PurchaseStockUseCase
	sellUseCase     *stock.SellStockUseCase
	updateUseCase   *stock.UpdateStockUseCase
	deleteUseCase   *stock.DeleteStockUseCase
	holdingsUseCase *stock.GetHoldingsUseCase
}

// NewStockController creates a new stock controller instance.
func NewStockController(
	listUseCase *stock.ListStocksUseCase,
	getUseCase *stock.GetStockUseCase,
	purchaseUseCase *stock.PurchaseStockUseCase,
	sellUseCase *stock.SellStockUseCase,
	updateUseCase *stock.UpdateStockUseCase,
	deleteUseCase *stock.DeleteStockUseCase,
	holdingsUseCase *stock.GetHoldingsUseCase,
) *StockController {
	return &StockController{
		listUseCase:     listUseCase,
		getUseCase:      getUseCase,
		purchaseUseCase: purchaseUseCase,
		sellUseCase:     sellUseCase,
		updateUseCase:   updateUseCase,
		deleteUseCase:   deleteUseCase,
		holdingsUseCase: holdingsUseCase,
	}
}

// List handles GET /stocks requests. An optional wallet_id query parameter
// restricts the listing to one wallet.
func (c *StockController) List(ctx *gin.Context) {
	input := stock.ListStocksInput{}

	if walletIDStr := ctx.Query("wallet_id"); walletIDStr != "" {
		walletID, err := strconv.ParseInt(walletIDStr, 10, 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid wallet_id format",
			})
			return
		}
		input.WalletID = &walletID
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve stocks",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStockListResponse(output.Stocks))
}

// Get handles GET /stocks/:id requests.
func (c *StockController) Get(ctx *gin.Context) {
	stockID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), stock.GetStockInput{
		StockID: stockID,
	})
	if err != nil {
		c.handleStockError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStockResponse(output.Stock))
}

// Create handles POST /stocks requests. Creating a stock record is a
// purchase: the cost leaves the wallet's cash and enters investment value.
func (c *StockController) Create(ctx *gin.Context) {
	var req dto.CreateStockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingStockFields),
		})
		return
	}

	startDate, err := time.Parse(dto.DateLayout, req.StartDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid start_date format. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingStockFields),
		})
		return
	}

	input := stock.PurchaseStockInput{
		WalletID:   req.WalletID,
		Code:       req.Code,
		Volume:     decimal.NewFromFloat(req.Volume),
		StartPrice: decimal.NewFromFloat(req.StartPrice),
		StartDate:  startDate,
		Margin:     floatPtrToDecimal(req.Margin),
	}

	output, err := c.purchaseUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleStockError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToStockResponse(output.Stock))
}

// Update handles PUT /stocks/:id requests. A request that clears is_holding
// and carries a sell_price closes the position; anything else patches the
// record in place.
func (c *StockController) Update(ctx *gin.Context) {
	stockID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateStockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	if req.IsHolding != nil && !*req.IsHolding && req.SellPrice != nil {
		c.sell(ctx, stockID, req)
		return
	}

	input := stock.UpdateStockInput{
		StockID: stockID,
		Code:    req.Code,
		Volume:  floatPtrToDecimal(req.Volume),
		Margin:  floatPtrToDecimal(req.Margin),
	}

	if req.StartPrice != nil {
		startPrice := decimal.NewFromFloat(*req.StartPrice)
		input.StartPrice = &startPrice
	}

	if req.StartDate != nil {
		startDate, err := time.Parse(dto.DateLayout, *req.StartDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start_date format. Use YYYY-MM-DD",
			})
			return
		}
		input.StartDate = &startDate
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleStockError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStockResponse(output.Stock))
}

// sell closes a held position from an update request.
func (c *StockController) sell(ctx *gin.Context, stockID int64, req dto.UpdateStockRequest) {
	sellDate := time.Now().UTC()
	if req.SellDate != nil {
		parsed, err := time.Parse(dto.DateLayout, *req.SellDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid sell_date format. Use YYYY-MM-DD",
			})
			return
		}
		sellDate = parsed
	}

	output, err := c.sellUseCase.Execute(ctx.Request.Context(), stock.SellStockInput{
		StockID:   stockID,
		SellPrice: decimal.NewFromFloat(*req.SellPrice),
		SellDate:  sellDate,
	})
	if err != nil {
		c.handleStockError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStockResponse(output.Stock))
}

// Delete handles DELETE /stocks/:id requests.
func (c *StockController) Delete(ctx *gin.Context) {
	stockID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), stock.DeleteStockInput{
		StockID: stockID,
	})
	if err != nil {
		c.handleStockError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Holdings handles GET /stocks/holdings requests.
func (c *StockController) Holdings(ctx *gin.Context) {
	input := stock.GetHoldingsInput{}

	if walletIDStr := ctx.Query("wallet_id"); walletIDStr != "" {
		walletID, err := strconv.ParseInt(walletIDStr, 10, 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid wallet_id format",
			})
			return
		}
		input.WalletID = &walletID
	}

	output, err := c.holdingsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute holdings",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHoldingsResponse(output.Valuation))
}

// handleStockError maps stock errors to HTTP responses.
func (c *StockController) handleStockError(ctx *gin.Context, err error) {
	var stkErr *domainerror.StockError
	if errors.As(err, &stkErr) {
		ctx.JSON(c.getStatusCodeForStockError(stkErr.Code), dto.ErrorResponse{
			Error: stkErr.Message,
			Code:  string(stkErr.Code),
		})
		return
	}

	var wltErr *domainerror.WalletError
	if errors.As(err, &wltErr) {
		status := http.StatusBadRequest
		if wltErr.Code == domainerror.ErrCodeWalletNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: wltErr.Message,
			Code:  string(wltErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForStockError maps stock error codes to HTTP status codes.
func (c *StockController) getStatusCodeForStockError(code domainerror.StockErrorCode) int {
	switch code {
	case domainerror.ErrCodeStockNotFound,
		domainerror.ErrCodeStockWalletNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeStockWalletRequired,
		domainerror.ErrCodeInvalidStockVolume,
		domainerror.ErrCodeInvalidStockPrice,
		domainerror.ErrCodeMissingStockFields,
		domainerror.ErrCodeNotHolding:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
