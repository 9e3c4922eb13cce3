package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// WalletType represents the kind of wallet.
type WalletType string

const (
	WalletTypeCash    WalletType = "Cash"
	WalletTypeBank    WalletType = "Bank"
	WalletTypeStock   WalletType = "Stock"
	WalletTypeSavings WalletType = "Savings"
	WalletTypeAssets  WalletType = "Assets"
	WalletTypeCredit  WalletType = "Credit"
)

// WalletTypes lists every valid wallet type.
var WalletTypes = []WalletType{
	WalletTypeCash,
	WalletTypeBank,
	WalletTypeStock,
	WalletTypeSavings,
	WalletTypeAssets,
	WalletTypeCredit,
}

// IsValidWalletType reports whether the given type is a known wallet type.
func IsValidWalletType(t WalletType) bool {
	for _, wt := range WalletTypes {
		if t == wt {
			return true
		}
	}
	return false
}

// Wallet represents a money container. The nullable fields are populated
// only for certain types: Margin/Cash/InvestmentValue/GrossBalance for Stock
// wallets, Loan for Credit wallets.
type Wallet struct {
	ID              int64
	Name            string
	Balance         decimal.Decimal
	Type            WalletType
	Detail          *string
	Margin          *decimal.Decimal
	Cash            *decimal.Decimal
	InvestmentValue *decimal.Decimal
	GrossBalance    *decimal.Decimal
	Loan            *decimal.Decimal
	NotMine         bool
	CreatedAt       time.Time
}

// EffectiveBalance returns the single number representing the wallet's worth
// for aggregation purposes, chosen per its type: GrossBalance for Stock
// wallets, Loan for Credit wallets (a liability magnitude), Balance for
// everything else. When the type-specific field is nil the value falls back
// to Balance, matching the historical behavior even for Stock/Credit wallets
// that were never initialized.
func (w *Wallet) EffectiveBalance() decimal.Decimal {
	switch w.Type {
	case WalletTypeStock:
		if w.GrossBalance != nil {
			return *w.GrossBalance
		}
	case WalletTypeCredit:
		if w.Loan != nil {
			return *w.Loan
		}
	}
	return w.Balance
}

// CashValue returns the wallet's Cash field, treating nil as zero.
func (w *Wallet) CashValue() decimal.Decimal {
	if w.Cash == nil {
		return decimal.Zero
	}
	return *w.Cash
}

// InvestmentValueOrZero returns the wallet's InvestmentValue field, treating nil as zero.
func (w *Wallet) InvestmentValueOrZero() decimal.Decimal {
	if w.InvestmentValue == nil {
		return decimal.Zero
	}
	return *w.InvestmentValue
}

// LoanValue returns the wallet's Loan field, treating nil as zero.
func (w *Wallet) LoanValue() decimal.Decimal {
	if w.Loan == nil {
		return decimal.Zero
	}
	return *w.Loan
}
