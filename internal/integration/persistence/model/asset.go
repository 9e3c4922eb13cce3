package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finly/backend/internal/domain/entity"
)

// AssetModel represents the assets table in the database.
type AssetModel struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	Type      string          `gorm:"type:varchar(20);not null;index"`
	Name      string          `gorm:"type:varchar(100);not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,4);not null"`
	Value     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Currency  string          `gorm:"type:varchar(10);not null"`
	Notes     *string         `gorm:"type:text"`
	Date      time.Time       `gorm:"not null;index"`
	CreatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the AssetModel.
func (AssetModel) TableName() string {
	return "assets"
}

// ToEntity converts an AssetModel to a domain Asset entity.
func (m *AssetModel) ToEntity() *entity.Asset {
	return &entity.Asset{
		ID:        m.ID,
		Type:      entity.AssetType(m.Type),
		Name:      m.Name,
		Amount:    m.Amount,
		Value:     m.Value,
		Currency:  m.Currency,
		Notes:     m.Notes,
		Date:      m.Date,
		CreatedAt: m.CreatedAt,
	}
}

// AssetFromEntity creates an AssetModel from a domain Asset entity.
func AssetFromEntity(asset *entity.Asset) *AssetModel {
	return &AssetModel{
		ID:        asset.ID,
		Type:      string(asset.Type),
		Name:      asset.Name,
		Amount:    asset.Amount,
		Value:     asset.Value,
		Currency:  asset.Currency,
		Notes:     asset.Notes,
		Date:      asset.Date,
		CreatedAt: asset.CreatedAt,
	}
}
