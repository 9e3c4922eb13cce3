package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetType represents the kind of portfolio asset.
type AssetType string

const (
	AssetTypeMoney  AssetType = "Money"
	AssetTypeBank   AssetType = "Bank"
	AssetTypeGold   AssetType = "Gold"
	AssetTypeCrypto AssetType = "Crypto"
	AssetTypeStock  AssetType = "Stock"
	AssetTypeLoan   AssetType = "Loan"
)

// AssetTypes lists every valid asset type.
var AssetTypes = []AssetType{
	AssetTypeMoney,
	AssetTypeBank,
	AssetTypeGold,
	AssetTypeCrypto,
	AssetTypeStock,
	AssetTypeLoan,
}

// IsValidAssetType reports whether the given type is a known asset type.
func IsValidAssetType(t AssetType) bool {
	for _, at := range AssetTypes {
		if t == at {
			return true
		}
	}
	return false
}

// Asset represents a portfolio asset. A Loan asset stores its value positive
// but contributes negatively to the portfolio total.
type Asset struct {
	ID        int64
	Type      AssetType
	Name      string
	Amount    decimal.Decimal
	Value     decimal.Decimal
	Currency  string
	Notes     *string
	Date      time.Time
	CreatedAt time.Time
}
