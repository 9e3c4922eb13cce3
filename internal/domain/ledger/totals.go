// Package ledger implements the aggregation engine: pure reductions that
// turn snapshots of financial records into the totals and balances shown on
// every page, plus the wallet state-transition contract for transfers and
// stock purchases/sales. Functions here hold no state; every call is a fresh
// reduction over the snapshot it is given.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/finly/backend/internal/domain/entity"
)

// TransactionTotals aggregates a transaction snapshot.
type TransactionTotals struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	Balance       decimal.Decimal
}

// SummarizeTransactions reduces a transaction snapshot to income/expense
// totals. Order is irrelevant; an empty snapshot yields all zeros.
func SummarizeTransactions(txns []*entity.Transaction) TransactionTotals {
	totals := TransactionTotals{
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
	}
	for _, txn := range txns {
		switch txn.Type {
		case entity.TransactionTypeIncome:
			totals.TotalIncome = totals.TotalIncome.Add(txn.Amount)
		case entity.TransactionTypeExpense:
			totals.TotalExpenses = totals.TotalExpenses.Add(txn.Amount)
		}
	}
	totals.Balance = totals.TotalIncome.Sub(totals.TotalExpenses)
	return totals
}

// WalletTotals aggregates a wallet snapshot. TotalCredit is kept as a
// positive liability magnitude; NetBalance already has it subtracted.
type WalletTotals struct {
	TotalBalance decimal.Decimal
	TotalCredit  decimal.Decimal
	NetBalance   decimal.Decimal
}

// SummarizeWallets reduces a wallet snapshot using each wallet's effective
// balance: gross balance for Stock wallets, loan for Credit wallets, plain
// balance otherwise. Credit wallets are segregated so callers can show gross
// and net positions separately.
func SummarizeWallets(wallets []*entity.Wallet) WalletTotals {
	totals := WalletTotals{
		TotalBalance: decimal.Zero,
		TotalCredit:  decimal.Zero,
	}
	for _, w := range wallets {
		effective := w.EffectiveBalance()
		if w.Type == entity.WalletTypeCredit {
			totals.TotalCredit = totals.TotalCredit.Add(effective)
		} else {
			totals.TotalBalance = totals.TotalBalance.Add(effective)
		}
	}
	totals.NetBalance = totals.TotalBalance.Sub(totals.TotalCredit)
	return totals
}

// AssetTypeTotal is the per-type breakdown entry of AssetTotals.
type AssetTypeTotal struct {
	Count int
	Value decimal.Decimal
}

// AssetTotals aggregates an asset snapshot. Loan assets are stored positive
// but already subtracted from both their ByType entry and the portfolio total.
type AssetTotals struct {
	TotalPortfolioValue decimal.Decimal
	ByType              map[entity.AssetType]AssetTypeTotal
}

// SummarizeAssets reduces an asset snapshot to a portfolio total and a
// per-type breakdown. Every asset type gets an entry, zero-valued when no
// asset matches, so callers never need to distinguish missing from empty.
func SummarizeAssets(assets []*entity.Asset) AssetTotals {
	byType := make(map[entity.AssetType]AssetTypeTotal, len(entity.AssetTypes))
	for _, assetType := range entity.AssetTypes {
		byType[assetType] = AssetTypeTotal{Value: decimal.Zero}
	}

	for _, asset := range assets {
		entry := byType[asset.Type]
		entry.Count++
		if asset.Type == entity.AssetTypeLoan {
			entry.Value = entry.Value.Sub(asset.Value)
		} else {
			entry.Value = entry.Value.Add(asset.Value)
		}
		byType[asset.Type] = entry
	}

	total := decimal.Zero
	for _, entry := range byType {
		total = total.Add(entry.Value)
	}

	return AssetTotals{
		TotalPortfolioValue: total,
		ByType:              byType,
	}
}

// HoldingValuation is the purchase-basis valuation of the currently held
// subset of a stock snapshot.
type HoldingValuation struct {
	Holdings   []*entity.Stock
	TotalValue decimal.Decimal
}

// ValueHoldings filters a stock snapshot down to held positions, optionally
// restricted to one wallet, and values them at volume times start price.
// Live market prices are a presentational overlay and never enter here.
func ValueHoldings(stocks []*entity.Stock, walletID *int64) HoldingValuation {
	valuation := HoldingValuation{
		Holdings:   []*entity.Stock{},
		TotalValue: decimal.Zero,
	}
	for _, s := range stocks {
		if !s.IsHolding {
			continue
		}
		if walletID != nil && s.WalletID != *walletID {
			continue
		}
		valuation.Holdings = append(valuation.Holdings, s)
		valuation.TotalValue = valuation.TotalValue.Add(s.PurchaseValue())
	}
	return valuation
}
