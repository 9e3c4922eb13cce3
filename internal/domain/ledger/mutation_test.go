package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/finly/backend/internal/domain/entity"
	domainerror "github.com/finly/backend/internal/domain/error"
)

func TestTransfer(t *testing.T) {
	t.Run("moves amount between plain wallets preserving the sum", func(t *testing.T) {
		from := wallet(entity.WalletTypeCash, "100")
		to := wallet(entity.WalletTypeBank, "50")

		if err := Transfer(from, to, dec("30")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !from.Balance.Equal(dec("70")) {
			t.Errorf("expected source 70, got %s", from.Balance)
		}
		if !to.Balance.Equal(dec("80")) {
			t.Errorf("expected destination 80, got %s", to.Balance)
		}
		if !from.Balance.Add(to.Balance).Equal(dec("150")) {
			t.Errorf("sum not preserved: %s", from.Balance.Add(to.Balance))
		}
	})

	t.Run("fails with insufficient funds and leaves both wallets unchanged", func(t *testing.T) {
		from := wallet(entity.WalletTypeCash, "100")
		to := wallet(entity.WalletTypeBank, "50")

		err := Transfer(from, to, dec("150"))
		if !errors.Is(err, domainerror.ErrInsufficientFunds) {
			t.Fatalf("expected ErrInsufficientFunds, got %v", err)
		}

		if !from.Balance.Equal(dec("100")) {
			t.Errorf("source changed on failure: %s", from.Balance)
		}
		if !to.Balance.Equal(dec("50")) {
			t.Errorf("destination changed on failure: %s", to.Balance)
		}
	})

	t.Run("checks the source's effective balance", func(t *testing.T) {
		from := wallet(entity.WalletTypeStock, "0")
		from.Cash = decPtr("40")
		from.InvestmentValue = decPtr("160")
		from.GrossBalance = decPtr("200")
		to := wallet(entity.WalletTypeCash, "0")

		// 100 exceeds cash but not the gross balance the check uses.
		if err := Transfer(from, to, dec("100")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("stock wallets move cash and recompute gross balance", func(t *testing.T) {
		from := wallet(entity.WalletTypeStock, "500")
		from.Cash = decPtr("500")
		from.InvestmentValue = decPtr("300")
		from.GrossBalance = decPtr("800")
		to := wallet(entity.WalletTypeCash, "0")

		if err := Transfer(from, to, dec("200")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !from.CashValue().Equal(dec("300")) {
			t.Errorf("expected cash 300, got %s", from.CashValue())
		}
		if !from.Balance.Equal(dec("300")) {
			t.Errorf("expected balance 300, got %s", from.Balance)
		}
		if from.GrossBalance == nil || !from.GrossBalance.Equal(dec("600")) {
			t.Errorf("expected gross 600, got %v", from.GrossBalance)
		}
		if !to.Balance.Equal(dec("200")) {
			t.Errorf("expected destination 200, got %s", to.Balance)
		}
	})

	t.Run("debiting a credit wallet pays its loan down", func(t *testing.T) {
		from := wallet(entity.WalletTypeCredit, "0")
		from.Loan = decPtr("400")
		to := wallet(entity.WalletTypeCash, "0")

		if err := Transfer(from, to, dec("150")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !from.LoanValue().Equal(dec("250")) {
			t.Errorf("expected loan 250, got %s", from.LoanValue())
		}
		if !to.Balance.Equal(dec("150")) {
			t.Errorf("expected destination 150, got %s", to.Balance)
		}
	})

	t.Run("crediting a credit wallet draws on credit", func(t *testing.T) {
		from := wallet(entity.WalletTypeCash, "500")
		to := wallet(entity.WalletTypeCredit, "0")
		to.Loan = decPtr("100")

		if err := Transfer(from, to, dec("200")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !from.Balance.Equal(dec("300")) {
			t.Errorf("expected source 300, got %s", from.Balance)
		}
		if !to.LoanValue().Equal(dec("300")) {
			t.Errorf("expected loan 300, got %s", to.LoanValue())
		}
	})
}

func TestApplyStockPurchase(t *testing.T) {
	t.Run("moves cost from cash to investment value", func(t *testing.T) {
		w := wallet(entity.WalletTypeStock, "0")
		w.Cash = decPtr("1000")
		w.InvestmentValue = decPtr("0")

		if err := ApplyStockPurchase(w, dec("10"), dec("20")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !w.CashValue().Equal(dec("800")) {
			t.Errorf("expected cash 800, got %s", w.CashValue())
		}
		if !w.InvestmentValueOrZero().Equal(dec("200")) {
			t.Errorf("expected investment 200, got %s", w.InvestmentValueOrZero())
		}
		if w.GrossBalance == nil || !w.GrossBalance.Equal(dec("1000")) {
			t.Errorf("expected gross 1000, got %v", w.GrossBalance)
		}
	})

	t.Run("fails when cost exceeds cash and leaves the wallet unchanged", func(t *testing.T) {
		w := wallet(entity.WalletTypeStock, "0")
		w.Cash = decPtr("100")

		err := ApplyStockPurchase(w, dec("10"), dec("20"))
		if !errors.Is(err, domainerror.ErrInsufficientFunds) {
			t.Fatalf("expected ErrInsufficientFunds, got %v", err)
		}

		if !w.CashValue().Equal(dec("100")) {
			t.Errorf("cash changed on failure: %s", w.CashValue())
		}
		if w.InvestmentValue != nil {
			t.Errorf("investment changed on failure: %s", *w.InvestmentValue)
		}
	})

	t.Run("cost exactly equal to cash is allowed", func(t *testing.T) {
		w := wallet(entity.WalletTypeStock, "0")
		w.Cash = decPtr("200")

		if err := ApplyStockPurchase(w, dec("10"), dec("20")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !w.CashValue().IsZero() {
			t.Errorf("expected zero cash, got %s", w.CashValue())
		}
	})
}

func TestApplyStockSale(t *testing.T) {
	sellDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("returns proceeds at sell price and removes purchase basis", func(t *testing.T) {
		s := stock(1, "10", "20", true)
		w := wallet(entity.WalletTypeStock, "0")
		w.Cash = decPtr("100")
		w.InvestmentValue = decPtr("200")

		if err := ApplyStockSale(s, w, dec("25"), sellDate); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Cash grows by 10*25=250, investment shrinks by 10*20=200.
		if !w.CashValue().Equal(dec("350")) {
			t.Errorf("expected cash 350, got %s", w.CashValue())
		}
		if !w.InvestmentValueOrZero().IsZero() {
			t.Errorf("expected investment 0, got %s", w.InvestmentValueOrZero())
		}
		if w.GrossBalance == nil || !w.GrossBalance.Equal(dec("350")) {
			t.Errorf("expected gross 350, got %v", w.GrossBalance)
		}

		if s.IsHolding {
			t.Error("expected stock to be marked sold")
		}
		if s.SellPrice == nil || !s.SellPrice.Equal(dec("25")) {
			t.Errorf("expected sell price 25, got %v", s.SellPrice)
		}
		if s.SellDate == nil || !s.SellDate.Equal(sellDate) {
			t.Errorf("expected sell date %s, got %v", sellDate, s.SellDate)
		}
	})

	t.Run("a second sale attempt fails with NotHolding", func(t *testing.T) {
		s := stock(1, "10", "20", true)
		w := wallet(entity.WalletTypeStock, "0")
		w.Cash = decPtr("0")

		if err := ApplyStockSale(s, w, dec("25"), sellDate); err != nil {
			t.Fatalf("unexpected error on first sale: %v", err)
		}

		err := ApplyStockSale(s, w, dec("30"), sellDate)
		if !errors.Is(err, domainerror.ErrNotHolding) {
			t.Fatalf("expected ErrNotHolding, got %v", err)
		}

		// First sale's numbers must survive the rejected second attempt.
		if !w.CashValue().Equal(dec("250")) {
			t.Errorf("wallet changed on rejected sale: %s", w.CashValue())
		}
		if !s.SellPrice.Equal(dec("25")) {
			t.Errorf("sell price changed on rejected sale: %s", s.SellPrice)
		}
	})
}

func TestApplyTransaction(t *testing.T) {
	t.Run("income credits and expense debits a plain wallet", func(t *testing.T) {
		w := wallet(entity.WalletTypeCash, "100")

		ApplyTransaction(w, txn(entity.TransactionTypeIncome, "50"))
		if !w.Balance.Equal(dec("150")) {
			t.Errorf("expected 150 after income, got %s", w.Balance)
		}

		ApplyTransaction(w, txn(entity.TransactionTypeExpense, "30"))
		if !w.Balance.Equal(dec("120")) {
			t.Errorf("expected 120 after expense, got %s", w.Balance)
		}
	})

	t.Run("credit wallets track the loan instead of the balance", func(t *testing.T) {
		w := wallet(entity.WalletTypeCredit, "0")
		w.Loan = decPtr("500")

		ApplyTransaction(w, txn(entity.TransactionTypeIncome, "200"))
		if !w.LoanValue().Equal(dec("300")) {
			t.Errorf("expected loan 300 after income, got %s", w.LoanValue())
		}

		ApplyTransaction(w, txn(entity.TransactionTypeExpense, "50"))
		if !w.LoanValue().Equal(dec("350")) {
			t.Errorf("expected loan 350 after expense, got %s", w.LoanValue())
		}
		if !w.Balance.IsZero() {
			t.Errorf("credit wallet balance should stay untouched, got %s", w.Balance)
		}
	})

	t.Run("stock wallets keep cash in step and recompute gross", func(t *testing.T) {
		w := wallet(entity.WalletTypeStock, "100")
		w.Cash = decPtr("100")
		w.InvestmentValue = decPtr("400")

		ApplyTransaction(w, txn(entity.TransactionTypeExpense, "60"))

		if !w.Balance.Equal(dec("40")) {
			t.Errorf("expected balance 40, got %s", w.Balance)
		}
		if !w.CashValue().Equal(dec("40")) {
			t.Errorf("expected cash 40, got %s", w.CashValue())
		}
		if w.GrossBalance == nil || !w.GrossBalance.Equal(dec("440")) {
			t.Errorf("expected gross 440, got %v", w.GrossBalance)
		}
	})

	t.Run("revert is the exact inverse of apply", func(t *testing.T) {
		w := wallet(entity.WalletTypeCash, "100")
		income := txn(entity.TransactionTypeIncome, "75")

		ApplyTransaction(w, income)
		RevertTransaction(w, income)

		if !w.Balance.Equal(dec("100")) {
			t.Errorf("expected 100 after apply+revert, got %s", w.Balance)
		}

		creditWallet := wallet(entity.WalletTypeCredit, "0")
		creditWallet.Loan = decPtr("200")
		expense := txn(entity.TransactionTypeExpense, "80")

		ApplyTransaction(creditWallet, expense)
		RevertTransaction(creditWallet, expense)

		if !creditWallet.LoanValue().Equal(dec("200")) {
			t.Errorf("expected loan 200 after apply+revert, got %s", creditWallet.LoanValue())
		}
	})
}
