package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finly/backend/internal/domain/entity"
	domainerror "github.com/finly/backend/internal/domain/error"
)

// The functions below compute post-mutation wallet state in memory. They
// mutate the wallet/stock values passed in, which callers treat as working
// copies: persistence only happens after the function returns nil, inside a
// single database transaction, so a returned error always leaves the stored
// state untouched.

// Transfer moves amount from one wallet to another. It fails with
// ErrInsufficientFunds when amount exceeds the source's effective balance,
// leaving both wallets unmodified. On success the source is debited and the
// destination credited, with type-specific bookkeeping: Stock wallets move
// cash alongside balance and recompute gross balance; Credit wallets move
// loan instead of balance (debiting a Credit wallet pays debt down, crediting
// one draws on credit).
func Transfer(from, to *entity.Wallet, amount decimal.Decimal) error {
	if amount.GreaterThan(from.EffectiveBalance()) {
		return domainerror.NewWalletError(
			domainerror.ErrCodeInsufficientFunds,
			"insufficient funds in source wallet",
			domainerror.ErrInsufficientFunds,
		)
	}

	transferDebit(from, amount)
	transferCredit(to, amount)
	return nil
}

func transferDebit(w *entity.Wallet, amount decimal.Decimal) {
	switch w.Type {
	case entity.WalletTypeCredit:
		loan := w.LoanValue().Sub(amount)
		w.Loan = &loan
	case entity.WalletTypeStock:
		w.Balance = w.Balance.Sub(amount)
		cash := w.CashValue().Sub(amount)
		w.Cash = &cash
		recomputeGrossBalance(w)
	default:
		w.Balance = w.Balance.Sub(amount)
	}
}

func transferCredit(w *entity.Wallet, amount decimal.Decimal) {
	switch w.Type {
	case entity.WalletTypeCredit:
		loan := w.LoanValue().Add(amount)
		w.Loan = &loan
	case entity.WalletTypeStock:
		w.Balance = w.Balance.Add(amount)
		cash := w.CashValue().Add(amount)
		w.Cash = &cash
		recomputeGrossBalance(w)
	default:
		w.Balance = w.Balance.Add(amount)
	}
}

// ApplyStockPurchase deducts a purchase from a Stock wallet's cash and books
// it as investment value. It fails with ErrInsufficientFunds when the cost
// (volume times start price) exceeds available cash, leaving the wallet
// unmodified.
func ApplyStockPurchase(wallet *entity.Wallet, volume, startPrice decimal.Decimal) error {
	cost := volume.Mul(startPrice)
	if cost.GreaterThan(wallet.CashValue()) {
		return domainerror.NewWalletError(
			domainerror.ErrCodeInsufficientFunds,
			"insufficient cash in wallet",
			domainerror.ErrInsufficientFunds,
		)
	}

	cash := wallet.CashValue().Sub(cost)
	investment := wallet.InvestmentValueOrZero().Add(cost)
	wallet.Cash = &cash
	wallet.InvestmentValue = &investment
	recomputeGrossBalance(wallet)
	return nil
}

// ApplyStockSale marks a held stock as sold and returns the proceeds to the
// wallet: cash grows by sell price times volume while investment value shrinks
// by the purchase basis (start price times volume). A second sale attempt
// fails with ErrNotHolding and changes nothing.
func ApplyStockSale(stock *entity.Stock, wallet *entity.Wallet, sellPrice decimal.Decimal, sellDate time.Time) error {
	if !stock.IsHolding {
		return domainerror.NewStockError(
			domainerror.ErrCodeNotHolding,
			"stock has already been sold",
			domainerror.ErrNotHolding,
		)
	}

	stock.IsHolding = false
	stock.SellPrice = &sellPrice
	stock.SellDate = &sellDate

	cash := wallet.CashValue().Add(sellPrice.Mul(stock.Volume))
	investment := wallet.InvestmentValueOrZero().Sub(stock.PurchaseValue())
	wallet.Cash = &cash
	wallet.InvestmentValue = &investment
	recomputeGrossBalance(wallet)
	return nil
}

// ApplyTransaction adjusts a wallet for a newly recorded transaction. Income
// into a Credit wallet pays debt down; expense on one grows the loan. Stock
// wallets keep cash in step with balance and recompute gross balance.
func ApplyTransaction(wallet *entity.Wallet, txn *entity.Transaction) {
	applyTransactionDelta(wallet, txn, false)
}

// RevertTransaction undoes ApplyTransaction, used when a transaction is deleted.
func RevertTransaction(wallet *entity.Wallet, txn *entity.Transaction) {
	applyTransactionDelta(wallet, txn, true)
}

func applyTransactionDelta(wallet *entity.Wallet, txn *entity.Transaction, revert bool) {
	amount := txn.Amount
	income := txn.Type == entity.TransactionTypeIncome
	if revert {
		income = !income
	}

	if wallet.Type == entity.WalletTypeCredit {
		// Income reduces debt, expense draws on credit.
		var loan decimal.Decimal
		if income {
			loan = wallet.LoanValue().Sub(amount)
		} else {
			loan = wallet.LoanValue().Add(amount)
		}
		wallet.Loan = &loan
		return
	}

	if income {
		wallet.Balance = wallet.Balance.Add(amount)
	} else {
		wallet.Balance = wallet.Balance.Sub(amount)
	}

	if wallet.Type == entity.WalletTypeStock {
		var cash decimal.Decimal
		if income {
			cash = wallet.CashValue().Add(amount)
		} else {
			cash = wallet.CashValue().Sub(amount)
		}
		wallet.Cash = &cash
		recomputeGrossBalance(wallet)
	}
}

// recomputeGrossBalance keeps the Stock wallet invariant
// gross_balance = cash + investment_value after a mutation. Aggregation
// never calls this: reads trust the stored gross balance as given.
func recomputeGrossBalance(w *entity.Wallet) {
	gross := w.CashValue().Add(w.InvestmentValueOrZero())
	w.GrossBalance = &gross
}
