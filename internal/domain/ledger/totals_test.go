package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finly/backend/internal/domain/entity"
)

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func txn(txnType entity.TransactionType, amount string) *entity.Transaction {
	return &entity.Transaction{
		Type:   txnType,
		Amount: dec(amount),
		Date:   time.Now(),
	}
}

func TestSummarizeTransactions(t *testing.T) {
	t.Run("empty input yields all zeros", func(t *testing.T) {
		totals := SummarizeTransactions(nil)

		if !totals.TotalIncome.IsZero() {
			t.Errorf("expected zero income, got %s", totals.TotalIncome)
		}
		if !totals.TotalExpenses.IsZero() {
			t.Errorf("expected zero expenses, got %s", totals.TotalExpenses)
		}
		if !totals.Balance.IsZero() {
			t.Errorf("expected zero balance, got %s", totals.Balance)
		}
	})

	t.Run("income and expenses sum separately", func(t *testing.T) {
		totals := SummarizeTransactions([]*entity.Transaction{
			txn(entity.TransactionTypeIncome, "500"),
			txn(entity.TransactionTypeExpense, "120"),
			txn(entity.TransactionTypeExpense, "30"),
		})

		if !totals.TotalIncome.Equal(dec("500")) {
			t.Errorf("expected income 500, got %s", totals.TotalIncome)
		}
		if !totals.TotalExpenses.Equal(dec("150")) {
			t.Errorf("expected expenses 150, got %s", totals.TotalExpenses)
		}
		if !totals.Balance.Equal(dec("350")) {
			t.Errorf("expected balance 350, got %s", totals.Balance)
		}
	})

	t.Run("balance always equals income minus expenses", func(t *testing.T) {
		txns := []*entity.Transaction{
			txn(entity.TransactionTypeIncome, "1234.56"),
			txn(entity.TransactionTypeExpense, "2000"),
			txn(entity.TransactionTypeIncome, "0.44"),
			txn(entity.TransactionTypeExpense, "17.25"),
		}

		totals := SummarizeTransactions(txns)

		want := totals.TotalIncome.Sub(totals.TotalExpenses)
		if !totals.Balance.Equal(want) {
			t.Errorf("balance %s != income-expenses %s", totals.Balance, want)
		}
	})

	t.Run("order of transactions is irrelevant", func(t *testing.T) {
		forward := SummarizeTransactions([]*entity.Transaction{
			txn(entity.TransactionTypeIncome, "10"),
			txn(entity.TransactionTypeExpense, "4"),
			txn(entity.TransactionTypeIncome, "6"),
		})
		reversed := SummarizeTransactions([]*entity.Transaction{
			txn(entity.TransactionTypeIncome, "6"),
			txn(entity.TransactionTypeExpense, "4"),
			txn(entity.TransactionTypeIncome, "10"),
		})

		if !forward.Balance.Equal(reversed.Balance) {
			t.Errorf("balance depends on order: %s vs %s", forward.Balance, reversed.Balance)
		}
	})

	t.Run("negative balance is reported as-is", func(t *testing.T) {
		totals := SummarizeTransactions([]*entity.Transaction{
			txn(entity.TransactionTypeExpense, "300"),
			txn(entity.TransactionTypeIncome, "100"),
		})

		if !totals.Balance.Equal(dec("-200")) {
			t.Errorf("expected balance -200, got %s", totals.Balance)
		}
	})
}

func wallet(walletType entity.WalletType, balance string) *entity.Wallet {
	return &entity.Wallet{
		Name:    "test",
		Type:    walletType,
		Balance: dec(balance),
	}
}

func decPtr(value string) *decimal.Decimal {
	d := dec(value)
	return &d
}

func TestSummarizeWallets(t *testing.T) {
	t.Run("empty input yields all zeros", func(t *testing.T) {
		totals := SummarizeWallets(nil)

		if !totals.TotalBalance.IsZero() || !totals.TotalCredit.IsZero() || !totals.NetBalance.IsZero() {
			t.Errorf("expected all zeros, got %+v", totals)
		}
	})

	t.Run("plain wallets use balance", func(t *testing.T) {
		totals := SummarizeWallets([]*entity.Wallet{
			wallet(entity.WalletTypeCash, "100"),
			wallet(entity.WalletTypeBank, "250.50"),
			wallet(entity.WalletTypeSavings, "49.50"),
		})

		if !totals.TotalBalance.Equal(dec("400")) {
			t.Errorf("expected total 400, got %s", totals.TotalBalance)
		}
		if !totals.TotalCredit.IsZero() {
			t.Errorf("expected zero credit, got %s", totals.TotalCredit)
		}
		if !totals.NetBalance.Equal(dec("400")) {
			t.Errorf("expected net 400, got %s", totals.NetBalance)
		}
	})

	t.Run("stock wallets use gross balance when present", func(t *testing.T) {
		stockWallet := wallet(entity.WalletTypeStock, "10")
		stockWallet.Cash = decPtr("300")
		stockWallet.InvestmentValue = decPtr("700")
		stockWallet.GrossBalance = decPtr("1000")

		totals := SummarizeWallets([]*entity.Wallet{stockWallet})

		if !totals.TotalBalance.Equal(dec("1000")) {
			t.Errorf("expected gross balance 1000, got %s", totals.TotalBalance)
		}
	})

	t.Run("inconsistent gross balance is trusted as given", func(t *testing.T) {
		stockWallet := wallet(entity.WalletTypeStock, "10")
		stockWallet.Cash = decPtr("300")
		stockWallet.InvestmentValue = decPtr("700")
		stockWallet.GrossBalance = decPtr("999") // not cash+investment

		totals := SummarizeWallets([]*entity.Wallet{stockWallet})

		if !totals.TotalBalance.Equal(dec("999")) {
			t.Errorf("expected stored gross 999, got %s", totals.TotalBalance)
		}
	})

	t.Run("credit wallets are segregated as positive liability", func(t *testing.T) {
		creditWallet := wallet(entity.WalletTypeCredit, "0")
		creditWallet.Loan = decPtr("300")

		totals := SummarizeWallets([]*entity.Wallet{
			wallet(entity.WalletTypeCash, "1000"),
			creditWallet,
		})

		if !totals.TotalBalance.Equal(dec("1000")) {
			t.Errorf("expected total 1000, got %s", totals.TotalBalance)
		}
		if !totals.TotalCredit.Equal(dec("300")) {
			t.Errorf("expected credit 300, got %s", totals.TotalCredit)
		}
		if !totals.NetBalance.Equal(dec("700")) {
			t.Errorf("expected net 700, got %s", totals.NetBalance)
		}
	})

	t.Run("nil type-specific fields fall back to balance", func(t *testing.T) {
		stockWallet := wallet(entity.WalletTypeStock, "42")
		creditWallet := wallet(entity.WalletTypeCredit, "13")

		totals := SummarizeWallets([]*entity.Wallet{stockWallet, creditWallet})

		if !totals.TotalBalance.Equal(dec("42")) {
			t.Errorf("expected stock fallback 42, got %s", totals.TotalBalance)
		}
		if !totals.TotalCredit.Equal(dec("13")) {
			t.Errorf("expected credit fallback 13, got %s", totals.TotalCredit)
		}
	})

	t.Run("heavy liabilities yield a negative net balance", func(t *testing.T) {
		creditWallet := wallet(entity.WalletTypeCredit, "0")
		creditWallet.Loan = decPtr("5000")

		totals := SummarizeWallets([]*entity.Wallet{
			wallet(entity.WalletTypeCash, "100"),
			creditWallet,
		})

		if !totals.NetBalance.Equal(dec("-4900")) {
			t.Errorf("expected net -4900, got %s", totals.NetBalance)
		}
	})
}

func asset(assetType entity.AssetType, value string) *entity.Asset {
	return &entity.Asset{
		Type:     assetType,
		Name:     "test",
		Amount:   decimal.NewFromInt(1),
		Value:    dec(value),
		Currency: "USD",
		Date:     time.Now(),
	}
}

func TestSummarizeAssets(t *testing.T) {
	t.Run("empty input yields zero entries for every type", func(t *testing.T) {
		totals := SummarizeAssets(nil)

		if !totals.TotalPortfolioValue.IsZero() {
			t.Errorf("expected zero portfolio, got %s", totals.TotalPortfolioValue)
		}
		if len(totals.ByType) != len(entity.AssetTypes) {
			t.Fatalf("expected %d type entries, got %d", len(entity.AssetTypes), len(totals.ByType))
		}
		for assetType, entry := range totals.ByType {
			if entry.Count != 0 || !entry.Value.IsZero() {
				t.Errorf("%s: expected zero entry, got %+v", assetType, entry)
			}
		}
	})

	t.Run("loan values are stored positive but contribute negatively", func(t *testing.T) {
		totals := SummarizeAssets([]*entity.Asset{
			asset(entity.AssetTypeGold, "1500"),
			asset(entity.AssetTypeCrypto, "500"),
			asset(entity.AssetTypeLoan, "800"),
		})

		if !totals.ByType[entity.AssetTypeLoan].Value.Equal(dec("-800")) {
			t.Errorf("expected loan entry -800, got %s", totals.ByType[entity.AssetTypeLoan].Value)
		}
		if !totals.TotalPortfolioValue.Equal(dec("1200")) {
			t.Errorf("expected portfolio 1200, got %s", totals.TotalPortfolioValue)
		}
	})

	t.Run("portfolio total equals sum of by-type values", func(t *testing.T) {
		totals := SummarizeAssets([]*entity.Asset{
			asset(entity.AssetTypeMoney, "10"),
			asset(entity.AssetTypeBank, "20"),
			asset(entity.AssetTypeLoan, "5"),
			asset(entity.AssetTypeLoan, "3"),
			asset(entity.AssetTypeStock, "42"),
		})

		sum := decimal.Zero
		for _, entry := range totals.ByType {
			sum = sum.Add(entry.Value)
		}
		if !totals.TotalPortfolioValue.Equal(sum) {
			t.Errorf("portfolio %s != by-type sum %s", totals.TotalPortfolioValue, sum)
		}
	})

	t.Run("counts track matching assets per type", func(t *testing.T) {
		totals := SummarizeAssets([]*entity.Asset{
			asset(entity.AssetTypeGold, "100"),
			asset(entity.AssetTypeGold, "200"),
			asset(entity.AssetTypeLoan, "50"),
		})

		if got := totals.ByType[entity.AssetTypeGold].Count; got != 2 {
			t.Errorf("expected 2 gold assets, got %d", got)
		}
		if got := totals.ByType[entity.AssetTypeLoan].Count; got != 1 {
			t.Errorf("expected 1 loan asset, got %d", got)
		}
		if got := totals.ByType[entity.AssetTypeCrypto].Count; got != 0 {
			t.Errorf("expected 0 crypto assets, got %d", got)
		}
	})

	t.Run("negative portfolio total from heavy loans is reported as-is", func(t *testing.T) {
		totals := SummarizeAssets([]*entity.Asset{
			asset(entity.AssetTypeMoney, "100"),
			asset(entity.AssetTypeLoan, "900"),
		})

		if !totals.TotalPortfolioValue.Equal(dec("-800")) {
			t.Errorf("expected portfolio -800, got %s", totals.TotalPortfolioValue)
		}
	})
}

func stock(walletID int64, volume, startPrice string, holding bool) *entity.Stock {
	return &entity.Stock{
		WalletID:   walletID,
		Code:       "TEST",
		Volume:     dec(volume),
		StartPrice: dec(startPrice),
		StartDate:  time.Now(),
		IsHolding:  holding,
	}
}

func TestValueHoldings(t *testing.T) {
	t.Run("empty input yields zero total", func(t *testing.T) {
		valuation := ValueHoldings(nil, nil)

		if len(valuation.Holdings) != 0 {
			t.Errorf("expected no holdings, got %d", len(valuation.Holdings))
		}
		if !valuation.TotalValue.IsZero() {
			t.Errorf("expected zero total, got %s", valuation.TotalValue)
		}
	})

	t.Run("only held stocks count toward the total", func(t *testing.T) {
		valuation := ValueHoldings([]*entity.Stock{
			stock(1, "10", "20", true),
			stock(1, "5", "100", false),
			stock(1, "3", "50", true),
		}, nil)

		if len(valuation.Holdings) != 2 {
			t.Fatalf("expected 2 holdings, got %d", len(valuation.Holdings))
		}
		if !valuation.TotalValue.Equal(dec("350")) {
			t.Errorf("expected total 350, got %s", valuation.TotalValue)
		}
	})

	t.Run("wallet filter restricts the subset", func(t *testing.T) {
		walletID := int64(2)
		valuation := ValueHoldings([]*entity.Stock{
			stock(1, "10", "20", true),
			stock(2, "4", "25", true),
		}, &walletID)

		if len(valuation.Holdings) != 1 {
			t.Fatalf("expected 1 holding, got %d", len(valuation.Holdings))
		}
		if !valuation.TotalValue.Equal(dec("100")) {
			t.Errorf("expected total 100, got %s", valuation.TotalValue)
		}
	})

	t.Run("valuation uses purchase price regardless of sale state", func(t *testing.T) {
		sold := stock(1, "10", "20", false)
		sold.SellPrice = decPtr("35")

		if !sold.PurchaseValue().Equal(dec("200")) {
			t.Errorf("expected purchase value 200, got %s", sold.PurchaseValue())
		}
	})
}
