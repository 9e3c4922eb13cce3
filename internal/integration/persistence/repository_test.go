package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finly/backend/internal/domain/entity"
	domainerror "github.com/finly/backend/internal/domain/error"
	"github.com/finly/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// A single connection keeps the in-memory database alive for the test.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(
		&model.WalletModel{},
		&model.TransactionModel{},
		&model.StockModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func seedWallet(t *testing.T, db *gorm.DB, name string, balance decimal.Decimal) *entity.Wallet {
	t.Helper()

	wallet := &entity.Wallet{
		Name:      name,
		Balance:   balance,
		Type:      entity.WalletTypeBank,
		CreatedAt: time.Now().UTC(),
	}
	if err := NewWalletRepository(db).Create(context.Background(), wallet); err != nil {
		t.Fatalf("failed to seed wallet: %v", err)
	}
	return wallet
}

func TestTransactionRepositoryCreateWithWallet(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	wallet := seedWallet(t, db, "Checking", decimal.NewFromInt(100))

	wallet.Balance = decimal.NewFromInt(150)
	txn := entity.NewTransaction(
		entity.TransactionTypeIncome,
		decimal.NewFromInt(50),
		"Salary",
		"Work",
		&wallet.ID,
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	)

	repo := NewTransactionRepository(db)
	if err := repo.Create(ctx, txn, wallet); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if txn.ID == 0 {
		t.Fatal("expected transaction ID to be assigned")
	}

	saved, err := NewWalletRepository(db).FindByID(ctx, wallet.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if !saved.Balance.Equal(decimal.NewFromInt(150)) {
		t.Errorf("wallet balance = %s, want 150", saved.Balance)
	}
}

func TestTransactionRepositoryDeleteRevertsWallet(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	wallet := seedWallet(t, db, "Checking", decimal.NewFromInt(100))

	txn := entity.NewTransaction(
		entity.TransactionTypeExpense,
		decimal.NewFromInt(30),
		"Groceries",
		"Food",
		&wallet.ID,
		time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
	)
	repo := NewTransactionRepository(db)
	wallet.Balance = decimal.NewFromInt(70)
	if err := repo.Create(ctx, txn, wallet); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	wallet.Balance = decimal.NewFromInt(100)
	if err := repo.Delete(ctx, txn.ID, wallet); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if _, err := repo.FindByID(ctx, txn.ID); !errors.Is(err, domainerror.ErrTransactionNotFound) {
		t.Errorf("FindByID after delete: err = %v, want ErrTransactionNotFound", err)
	}

	saved, err := NewWalletRepository(db).FindByID(ctx, wallet.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if !saved.Balance.Equal(decimal.NewFromInt(100)) {
		t.Errorf("wallet balance = %s, want 100", saved.Balance)
	}
}

func TestTransactionRepositoryDeleteMissing(t *testing.T) {
	db := newTestDB(t)

	err := NewTransactionRepository(db).Delete(context.Background(), 9999, nil)
	if !errors.Is(err, domainerror.ErrTransactionNotFound) {
		t.Errorf("Delete missing: err = %v, want ErrTransactionNotFound", err)
	}
}

func TestTransactionRepositoryListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewTransactionRepository(db)

	older := entity.NewTransaction(entity.TransactionTypeExpense, decimal.NewFromInt(10), "Old", "Misc", nil,
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	newer := entity.NewTransaction(entity.TransactionTypeExpense, decimal.NewFromInt(20), "New", "Misc", nil,
		time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))
	for _, txn := range []*entity.Transaction{older, newer} {
		if err := repo.Create(ctx, txn, nil); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	transactions, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(transactions) != 2 {
		t.Fatalf("len(transactions) = %d, want 2", len(transactions))
	}
	if transactions[0].Description != "New" {
		t.Errorf("first transaction = %q, want \"New\"", transactions[0].Description)
	}
}

func TestWalletRepositorySaveTransfer(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	from := seedWallet(t, db, "Checking", decimal.NewFromInt(200))
	to := seedWallet(t, db, "Savings", decimal.NewFromInt(50))

	from.Balance = decimal.NewFromInt(125)
	to.Balance = decimal.NewFromInt(125)

	date := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	legs := []*entity.Transaction{
		entity.NewTransaction(entity.TransactionTypeExpense, decimal.NewFromInt(75), "Transfer to Savings", "Transfer", &from.ID, date),
		entity.NewTransaction(entity.TransactionTypeIncome, decimal.NewFromInt(75), "Transfer from Checking", "Transfer", &to.ID, date),
	}

	walletRepo := NewWalletRepository(db)
	if err := walletRepo.SaveTransfer(ctx, from, to, legs); err != nil {
		t.Fatalf("SaveTransfer returned error: %v", err)
	}

	for i, leg := range legs {
		if leg.ID == 0 {
			t.Errorf("leg %d: expected ID to be assigned", i)
		}
	}

	savedFrom, err := walletRepo.FindByID(ctx, from.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	savedTo, err := walletRepo.FindByID(ctx, to.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if !savedFrom.Balance.Equal(decimal.NewFromInt(125)) || !savedTo.Balance.Equal(decimal.NewFromInt(125)) {
		t.Errorf("balances = %s / %s, want 125 / 125", savedFrom.Balance, savedTo.Balance)
	}

	transactions, err := NewTransactionRepository(db).List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(transactions) != 2 {
		t.Errorf("len(transactions) = %d, want 2 transfer legs", len(transactions))
	}
}

func TestWalletRepositoryDeleteMissing(t *testing.T) {
	db := newTestDB(t)

	err := NewWalletRepository(db).Delete(context.Background(), 9999)
	if !errors.Is(err, domainerror.ErrWalletNotFound) {
		t.Errorf("Delete missing: err = %v, want ErrWalletNotFound", err)
	}
}

func TestStockRepositoryWalletFilter(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	grossBalance := decimal.NewFromInt(1000)
	cash := decimal.NewFromInt(1000)
	investment := decimal.Zero
	stockWallet := &entity.Wallet{
		Name:            "Brokerage",
		Balance:         decimal.Zero,
		Type:            entity.WalletTypeStock,
		GrossBalance:    &grossBalance,
		Cash:            &cash,
		InvestmentValue: &investment,
		CreatedAt:       time.Now().UTC(),
	}
	if err := NewWalletRepository(db).Create(ctx, stockWallet); err != nil {
		t.Fatalf("failed to seed wallet: %v", err)
	}
	other := seedWallet(t, db, "Other", decimal.Zero)

	repo := NewStockRepository(db)
	held := entity.NewStock(stockWallet.ID, "AAPL", decimal.NewFromInt(10), decimal.NewFromInt(50),
		time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), nil)
	elsewhere := entity.NewStock(other.ID, "MSFT", decimal.NewFromInt(5), decimal.NewFromInt(40),
		time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC), nil)
	for _, s := range []*entity.Stock{held, elsewhere} {
		if err := repo.Create(ctx, s, nil); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	filtered, err := repo.List(ctx, &stockWallet.ID)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(filtered) != 1 || filtered[0].Code != "AAPL" {
		t.Errorf("filtered list = %v, want only AAPL", filtered)
	}

	all, err := repo.List(ctx, nil)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("len(all) = %d, want 2", len(all))
	}
}
