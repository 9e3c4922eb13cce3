package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finly/backend/internal/domain/entity"
)

// WalletModel represents the wallets table in the database.
type WalletModel struct {
	ID              int64            `gorm:"primaryKey;autoIncrement"`
	Name            string           `gorm:"type:varchar(100);not null"`
	Balance         decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	Type            string           `gorm:"type:varchar(20);not null;index"`
	Detail          *string          `gorm:"type:text"`
	Margin          *decimal.Decimal `gorm:"type:decimal(15,2)"`
	Cash            *decimal.Decimal `gorm:"type:decimal(15,2)"`
	InvestmentValue *decimal.Decimal `gorm:"type:decimal(15,2)"`
	GrossBalance    *decimal.Decimal `gorm:"type:decimal(15,2)"`
	Loan            *decimal.Decimal `gorm:"type:decimal(15,2)"`
	NotMine         bool             `gorm:"default:false"`
	CreatedAt       time.Time        `gorm:"not null"`
}

// TableName returns the table name for the WalletModel.
func (WalletModel) TableName() string {
	return "wallets"
}

// ToEntity converts a WalletModel to a domain Wallet entity.
func (m *WalletModel) ToEntity() *entity.Wallet {
	return &entity.Wallet{
		ID:              m.ID,
		Name:            m.Name,
		Balance:         m.Balance,
		Type:            entity.WalletType(m.Type),
		Detail:          m.Detail,
		Margin:          m.Margin,
		Cash:            m.Cash,
		InvestmentValue: m.InvestmentValue,
		GrossBalance:    m.GrossBalance,
		Loan:            m.Loan,
		NotMine:         m.NotMine,
		CreatedAt:       m.CreatedAt,
	}
}

// WalletFromEntity creates a WalletModel from a domain Wallet entity.
func WalletFromEntity(wallet *entity.Wallet) *WalletModel {
	return &WalletModel{
		ID:              wallet.ID,
		Name:            wallet.Name,
		Balance:         wallet.Balance,
		Type:            string(wallet.Type),
		Detail:          wallet.Detail,
		Margin:          wallet.Margin,
		Cash:            wallet.Cash,
		InvestmentValue: wallet.InvestmentValue,
		GrossBalance:    wallet.GrossBalance,
		Loan:            wallet.Loan,
		NotMine:         wallet.NotMine,
		CreatedAt:       wallet.CreatedAt,
	}
}
