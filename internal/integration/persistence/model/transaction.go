// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finly/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Type        string          `gorm:"type:varchar(10);not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Description string          `gorm:"type:varchar(255);not null"`
	Category    string          `gorm:"type:varchar(100)"`
	WalletID    *int64          `gorm:"index"`
	Date        time.Time       `gorm:"not null;index"`
	CreatedAt   time.Time       `gorm:"not null"`

	Wallet *WalletModel `gorm:"foreignKey:WalletID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		Type:        entity.TransactionType(m.Type),
		Amount:      m.Amount,
		Description: m.Description,
		Category:    m.Category,
		WalletID:    m.WalletID,
		Date:        m.Date,
		CreatedAt:   m.CreatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:          transaction.ID,
		Type:        string(transaction.Type),
		Amount:      transaction.Amount,
		Description: transaction.Description,
		Category:    transaction.Category,
		WalletID:    transaction.WalletID,
		Date:        transaction.Date,
		CreatedAt:   transaction.CreatedAt,
	}
}
