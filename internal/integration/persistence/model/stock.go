package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finly/backend/internal/domain/entity"
)

// StockModel represents the stocks table in the database.
type StockModel struct {
	ID         int64            `gorm:"primaryKey;autoIncrement"`
	WalletID   int64            `gorm:"not null;index"`
	Code       string           `gorm:"type:varchar(20);not null;index"`
	Volume     decimal.Decimal  `gorm:"type:decimal(15,4);not null"`
	StartPrice decimal.Decimal  `gorm:"type:decimal(15,4);not null"`
	StartDate  time.Time        `gorm:"not null;index"`
	SellPrice  *decimal.Decimal `gorm:"type:decimal(15,4)"`
	SellDate   *time.Time
	IsHolding  bool             `gorm:"default:true;index"`
	Margin     *decimal.Decimal `gorm:"type:decimal(15,2)"`
	CreatedAt  time.Time        `gorm:"not null"`

	Wallet *WalletModel `gorm:"foreignKey:WalletID;references:ID"`
}

// TableName returns the table name for the StockModel.
func (StockModel) TableName() string {
	return "stocks"
}

// ToEntity converts a StockModel to a domain Stock entity.
func (m *StockModel) ToEntity() *entity.Stock {
	return &entity.Stock{
		ID:         m.ID,
		WalletID:   m.WalletID,
		Code:       m.Code,
		Volume:     m.Volume,
		StartPrice: m.StartPrice,
		StartDate:  m.StartDate,
		SellPrice:  m.SellPrice,
		SellDate:   m.SellDate,
		IsHolding:  m.IsHolding,
		Margin:     m.Margin,
		CreatedAt:  m.CreatedAt,
	}
}

// StockFromEntity creates a StockModel from a domain Stock entity.
func StockFromEntity(stock *entity.Stock) *StockModel {
	return &StockModel{
		ID:         stock.ID,
		WalletID:   stock.WalletID,
		Code:       stock.Code,
		Volume:     stock.Volume,
		StartPrice: stock.StartPrice,
		StartDate:  stock.StartDate,
		SellPrice:  stock.SellPrice,
		SellDate:   stock.SellDate,
		IsHolding:  stock.IsHolding,
		Margin:     stock.Margin,
		CreatedAt:  stock.CreatedAt,
	}
}
