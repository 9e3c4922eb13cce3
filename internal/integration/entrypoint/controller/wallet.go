package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/finly/backend/internal/application/usecase/wallet"
	"github.com/finly/backend/internal/domain/entity"
	domainerror "github.com/finly/backend/internal/domain/error"
	"github.com/finly/backend/internal/integration/entrypoint/dto"
)

// WalletController handles wallet and transfer endpoints.
type WalletController struct {
	listUseCase     *wallet.ListWalletsUseCase
	getUseCase      *wallet.GetWalletUseCase
	createUseCase   *wallet.CreateWalletUseCase
	updateUseCase   *wallet.UpdateWalletUseCase
	deleteUseCase   *wallet.DeleteWalletUseCase
	totalsUseCase   *wallet.GetWalletTotalsUseCase
	transferUseCase *wallet.TransferMoneyUseCase
}

// NewWalletController creates a new wallet controller instance.
func NewWalletController(
	listUseCase *wallet.ListWalletsUseCase,
	getUseCase *wallet.GetWalletUseCase,
	createUseCase *wallet.CreateWalletUseCase,
	updateUseCase *wallet.UpdateWalletUseCase,
	deleteUseCase *wallet.DeleteWalletUseCase,
	totalsUseCase *wallet.GetWalletTotalsUseCase,
	transferUseCase *wallet.TransferMoneyUseCase,
) *WalletController {
	return &WalletController{
		listUseCase:     listUseCase,
		getUseCase:      getUseCase,
		createUseCase:   createUseCase,
		updateUseCase:   updateUseCase,
		deleteUseCase:   deleteUseCase,
		totalsUseCase:   totalsUseCase,
		transferUseCase: transferUseCase,
	}
}

// List handles GET /wallets requests.
func (c *WalletController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve wallets",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWalletListResponse(output.Wallets))
}

// Get handles GET /wallets/:id requests.
func (c *WalletController) Get(ctx *gin.Context) {
	walletID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), wallet.GetWalletInput{
		WalletID: walletID,
	})
	if err != nil {
		c.handleWalletError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWalletResponse(output.Wallet))
}

// Create handles POST /wallets requests. New wallets always start at zero
// balance; money arrives through transactions and transfers.
func (c *WalletController) Create(ctx *gin.Context) {
	var req dto.CreateWalletRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingWalletFields),
		})
		return
	}

	input := wallet.CreateWalletInput{
		Name:            req.Name,
		Type:            entity.WalletType(req.Type),
		Detail:          req.Detail,
		Margin:          floatPtrToDecimal(req.Margin),
		Cash:            floatPtrToDecimal(req.Cash),
		InvestmentValue: floatPtrToDecimal(req.InvestmentValue),
		GrossBalance:    floatPtrToDecimal(req.GrossBalance),
		Loan:            floatPtrToDecimal(req.Loan),
		NotMine:         req.NotMine,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleWalletError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToWalletResponse(output.Wallet))
}

// Update handles PUT /wallets/:id requests.
func (c *WalletController) Update(ctx *gin.Context) {
	walletID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateWalletRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := wallet.UpdateWalletInput{
		WalletID:        walletID,
		Name:            req.Name,
		Balance:         floatPtrToDecimal(req.Balance),
		Detail:          req.Detail,
		Margin:          floatPtrToDecimal(req.Margin),
		Cash:            floatPtrToDecimal(req.Cash),
		InvestmentValue: floatPtrToDecimal(req.InvestmentValue),
		GrossBalance:    floatPtrToDecimal(req.GrossBalance),
		Loan:            floatPtrToDecimal(req.Loan),
		NotMine:         req.NotMine,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleWalletError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWalletResponse(output.Wallet))
}

// Delete handles DELETE /wallets/:id requests.
func (c *WalletController) Delete(ctx *gin.Context) {
	walletID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), wallet.DeleteWalletInput{
		WalletID: walletID,
	})
	if err != nil {
		c.handleWalletError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Totals handles GET /wallets/summary/totals requests.
func (c *WalletController) Totals(ctx *gin.Context) {
	output, err := c.totalsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute wallet totals",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWalletTotalsResponse(output.Totals))
}

// Transfer handles POST /transfers requests.
func (c *WalletController) Transfer(ctx *gin.Context) {
	var req dto.TransferRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidTransferAmount),
		})
		return
	}

	input := wallet.TransferMoneyInput{
		FromWalletID: req.FromWalletID,
		ToWalletID:   req.ToWalletID,
		Amount:       decimal.NewFromFloat(req.Amount),
		Description:  req.Description,
	}

	output, err := c.transferUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleWalletError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.TransferResponse{
		Message:    "Transfer completed",
		FromWallet: dto.ToWalletResponse(output.FromWallet),
		ToWallet:   dto.ToWalletResponse(output.ToWallet),
	})
}

// handleWalletError maps wallet errors to HTTP responses.
func (c *WalletController) handleWalletError(ctx *gin.Context, err error) {
	var wltErr *domainerror.WalletError
	if errors.As(err, &wltErr) {
		ctx.JSON(c.getStatusCodeForWalletError(wltErr.Code), dto.ErrorResponse{
			Error: wltErr.Message,
			Code:  string(wltErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForWalletError maps wallet error codes to HTTP status codes.
func (c *WalletController) getStatusCodeForWalletError(code domainerror.WalletErrorCode) int {
	switch code {
	case domainerror.ErrCodeWalletNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidWalletType,
		domainerror.ErrCodeMissingWalletFields,
		domainerror.ErrCodeSameWalletTransfer,
		domainerror.ErrCodeInvalidTransferAmount,
		domainerror.ErrCodeInsufficientFunds:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// floatPtrToDecimal converts an optional JSON number to an optional decimal.
func floatPtrToDecimal(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	d := decimal.NewFromFloat(*f)
	return &d
}
