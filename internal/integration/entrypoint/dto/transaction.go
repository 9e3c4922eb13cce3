package dto

import (
	"time"

	"github.com/finly/backend/internal/domain/entity"
	"github.com/finly/backend/internal/domain/ledger"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Type        string  `json:"type" binding:"required,oneof=income expense"`
	Amount      float64 `json:"amount" binding:"required,gte=0"`
	Description string  `json:"description" binding:"required,max=255"`
	Category    string  `json:"category,omitempty" binding:"omitempty,max=100"`
	WalletID    *int64  `json:"wallet_id,omitempty"`
	Date        string  `json:"date" binding:"required"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Type        *string  `json:"type,omitempty" binding:"omitempty,oneof=income expense"`
	Amount      *float64 `json:"amount,omitempty" binding:"omitempty,gte=0"`
	Description *string  `json:"description,omitempty" binding:"omitempty,max=255"`
	Category    *string  `json:"category,omitempty" binding:"omitempty,max=100"`
	Date        *string  `json:"date,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          int64     `json:"id"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	WalletID    *int64    `json:"wallet_id,omitempty"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

// TransactionTotalsResponse represents the transaction totals summary.
type TransactionTotalsResponse struct {
	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`
	Balance       float64 `json:"balance"`
}

// ToTransactionResponse converts a domain Transaction entity to a response DTO.
func ToTransactionResponse(transaction *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          transaction.ID,
		Type:        string(transaction.Type),
		Amount:      transaction.Amount.InexactFloat64(),
		Description: transaction.Description,
		Category:    transaction.Category,
		WalletID:    transaction.WalletID,
		Date:        transaction.Date.Format(DateLayout),
		CreatedAt:   transaction.CreatedAt,
	}
}

// ToTransactionListResponse converts transactions to a list of response DTOs.
func ToTransactionListResponse(transactions []*entity.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		responses[i] = ToTransactionResponse(t)
	}
	return responses
}

// ToTransactionTotalsResponse converts ledger totals to a response DTO.
func ToTransactionTotalsResponse(totals ledger.TransactionTotals) TransactionTotalsResponse {
	return TransactionTotalsResponse{
		TotalIncome:   totals.TotalIncome.InexactFloat64(),
		TotalExpenses: totals.TotalExpenses.InexactFloat64(),
		Balance:       totals.Balance.InexactFloat64(),
	}
}
