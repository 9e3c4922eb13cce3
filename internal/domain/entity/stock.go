package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock represents a stock position bought through a Stock-type wallet.
// IsHolding flips to false once the position is sold.
type Stock struct {
	ID         int64
	WalletID   int64
	Code       string
	Volume     decimal.Decimal
	StartPrice decimal.Decimal
	StartDate  time.Time
	SellPrice  *decimal.Decimal
	SellDate   *time.Time
	IsHolding  bool
	Margin     *decimal.Decimal
	CreatedAt  time.Time
}

// NewStock creates a new holding Stock entity.
func NewStock(
	walletID int64,
	code string,
	volume decimal.Decimal,
	startPrice decimal.Decimal,
	startDate time.Time,
	margin *decimal.Decimal,
) *Stock {
	return &Stock{
		WalletID:   walletID,
		Code:       code,
		Volume:     volume,
		StartPrice: startPrice,
		StartDate:  startDate,
		Margin:     margin,
		IsHolding:  true,
		CreatedAt:  time.Now().UTC(),
	}
}

// PurchaseValue returns the position's purchase-basis valuation,
// volume times start price, regardless of whether it is still held.
func (s *Stock) PurchaseValue() decimal.Decimal {
	return s.Volume.Mul(s.StartPrice)
}
