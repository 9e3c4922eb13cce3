// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a financial transaction.
// Amount is always stored positive; the sign is implied by Type.
type Transaction struct {
	ID          int64
	Type        TransactionType
	Amount      decimal.Decimal
	Description string
	Category    string
	WalletID    *int64 // Optional, transaction may not touch a wallet
	Date        time.Time
	CreatedAt   time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	transactionType TransactionType,
	amount decimal.Decimal,
	description string,
	category string,
	walletID *int64,
	date time.Time,
) *Transaction {
	return &Transaction{
		Type:        transactionType,
		Amount:      amount,
		Description: description,
		Category:    category,
		WalletID:    walletID,
		Date:        date,
		CreatedAt:   time.Now().UTC(),
	}
}

// Signed returns the transaction's effect on a balance: +Amount for income,
// -Amount for expense.
func (t *Transaction) Signed() decimal.Decimal {
	if t.Type == TransactionTypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}
