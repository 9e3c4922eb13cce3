package dto

import (
	"time"

	"github.com/finly/backend/internal/domain/entity"
	"github.com/finly/backend/internal/domain/ledger"
)

// CreateWalletRequest represents the request body for wallet creation.
type CreateWalletRequest struct {
	Name            string   `json:"name" binding:"required,max=100"`
	Type            string   `json:"type" binding:"required"`
	Detail          *string  `json:"detail,omitempty"`
	Margin          *float64 `json:"margin,omitempty"`
	Cash            *float64 `json:"cash,omitempty"`
	InvestmentValue *float64 `json:"investment_value,omitempty"`
	GrossBalance    *float64 `json:"gross_balance,omitempty"`
	Loan            *float64 `json:"loan,omitempty"`
	NotMine         bool     `json:"not_mine,omitempty"`
}

// UpdateWalletRequest represents the request body for wallet update.
type UpdateWalletRequest struct {
	Name            *string  `json:"name,omitempty" binding:"omitempty,max=100"`
	Balance         *float64 `json:"balance,omitempty"`
	Detail          *string  `json:"detail,omitempty"`
	Margin          *float64 `json:"margin,omitempty"`
	Cash            *float64 `json:"cash,omitempty"`
	InvestmentValue *float64 `json:"investment_value,omitempty"`
	GrossBalance    *float64 `json:"gross_balance,omitempty"`
	Loan            *float64 `json:"loan,omitempty"`
	NotMine         *bool    `json:"not_mine,omitempty"`
}

// TransferRequest represents the request body for a wallet-to-wallet transfer.
type TransferRequest struct {
	FromWalletID int64   `json:"from_wallet_id" binding:"required"`
	ToWalletID   int64   `json:"to_wallet_id" binding:"required"`
	Amount       float64 `json:"amount" binding:"required,gt=0"`
	Description  string  `json:"description,omitempty" binding:"omitempty,max=255"`
}

// WalletResponse represents a single wallet in API responses.
type WalletResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Balance         float64   `json:"balance"`
	Type            string    `json:"type"`
	Detail          *string   `json:"detail,omitempty"`
	Margin          *float64  `json:"margin,omitempty"`
	Cash            *float64  `json:"cash,omitempty"`
	InvestmentValue *float64  `json:"investment_value,omitempty"`
	GrossBalance    *float64  `json:"gross_balance,omitempty"`
	Loan            *float64  `json:"loan,omitempty"`
	NotMine         bool      `json:"not_mine"`
	CreatedAt       time.Time `json:"created_at"`
}

// WalletTotalsResponse represents the wallet totals summary.
type WalletTotalsResponse struct {
	TotalBalance float64 `json:"total_balance"`
	TotalCredit  float64 `json:"total_credit"`
	NetBalance   float64 `json:"net_balance"`
}

// TransferResponse represents the result of a completed transfer.
type TransferResponse struct {
	Message    string         `json:"message"`
	FromWallet WalletResponse `json:"from_wallet"`
	ToWallet   WalletResponse `json:"to_wallet"`
}

// ToWalletResponse converts a domain Wallet entity to a response DTO.
func ToWalletResponse(wallet *entity.Wallet) WalletResponse {
	return WalletResponse{
		ID:              wallet.ID,
		Name:            wallet.Name,
		Balance:         wallet.Balance.InexactFloat64(),
		Type:            string(wallet.Type),
		Detail:          wallet.Detail,
		Margin:          decimalPtrToFloat(wallet.Margin),
		Cash:            decimalPtrToFloat(wallet.Cash),
		InvestmentValue: decimalPtrToFloat(wallet.InvestmentValue),
		GrossBalance:    decimalPtrToFloat(wallet.GrossBalance),
		Loan:            decimalPtrToFloat(wallet.Loan),
		NotMine:         wallet.NotMine,
		CreatedAt:       wallet.CreatedAt,
	}
}

// ToWalletListResponse converts wallets to a list of response DTOs.
func ToWalletListResponse(wallets []*entity.Wallet) []WalletResponse {
	responses := make([]WalletResponse, len(wallets))
	for i, w := range wallets {
		responses[i] = ToWalletResponse(w)
	}
	return responses
}

// ToWalletTotalsResponse converts ledger totals to a response DTO.
func ToWalletTotalsResponse(totals ledger.WalletTotals) WalletTotalsResponse {
	return WalletTotalsResponse{
		TotalBalance: totals.TotalBalance.InexactFloat64(),
		TotalCredit:  totals.TotalCredit.InexactFloat64(),
		NetBalance:   totals.NetBalance.InexactFloat64(),
	}
}
