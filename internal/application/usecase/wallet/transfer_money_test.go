package wallet

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finly/backend/internal/domain/entity"
	domainerror "github.com/finly/backend/internal/domain/error"
)

// fakeWalletRepository is an in-memory adapter.WalletRepository for use case tests.
type fakeWalletRepository struct {
	wallets    map[int64]*entity.Wallet
	savedLegs  []*entity.Transaction
	saveCalled bool
	saveErr    error
}

func newFakeWalletRepository(wallets ...*entity.Wallet) *fakeWalletRepository {
	repo := &fakeWalletRepository{wallets: make(map[int64]*entity.Wallet)}
	for _, w := range wallets {
		repo.wallets[w.ID] = w
	}
	return repo
}

func (f *fakeWalletRepository) List(ctx context.Context) ([]*entity.Wallet, error) {
	wallets := make([]*entity.Wallet, 0, len(f.wallets))
	for _, w := range f.wallets {
		wallets = append(wallets, w)
	}
	return wallets, nil
}

func (f *fakeWalletRepository) FindByID(ctx context.Context, id int64) (*entity.Wallet, error) {
	if w, ok := f.wallets[id]; ok {
		copied := *w
		return &copied, nil
	}
	return nil, domainerror.ErrWalletNotFound
}

func (f *fakeWalletRepository) Create(ctx context.Context, wallet *entity.Wallet) error {
	f.wallets[wallet.ID] = wallet
	return nil
}

func (f *fakeWalletRepository) Update(ctx context.Context, wallet *entity.Wallet) error {
	f.wallets[wallet.ID] = wallet
	return nil
}

func (f *fakeWalletRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := f.wallets[id]; !ok {
		return domainerror.ErrWalletNotFound
	}
	delete(f.wallets, id)
	return nil
}

func (f *fakeWalletRepository) SaveTransfer(ctx context.Context, from, to *entity.Wallet, legs []*entity.Transaction) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saveCalled = true
	f.wallets[from.ID] = from
	f.wallets[to.ID] = to
	f.savedLegs = legs
	return nil
}

func bankWallet(id int64, name string, balance int64) *entity.Wallet {
	return &entity.Wallet{
		ID:        id,
		Name:      name,
		Balance:   decimal.NewFromInt(balance),
		Type:      entity.WalletTypeBank,
		CreatedAt: time.Now().UTC(),
	}
}

func TestTransferMoneyMovesBalancesAndRecordsLegs(t *testing.T) {
	repo := newFakeWalletRepository(
		bankWallet(1, "Checking", 200),
		bankWallet(2, "Savings", 50),
	)
	uc := NewTransferMoneyUseCase(repo)

	output, err := uc.Execute(context.Background(), TransferMoneyInput{
		FromWalletID: 1,
		ToWalletID:   2,
		Amount:       decimal.NewFromInt(75),
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if !output.FromWallet.Balance.Equal(decimal.NewFromInt(125)) {
		t.Errorf("source balance = %s, want 125", output.FromWallet.Balance)
	}
	if !output.ToWallet.Balance.Equal(decimal.NewFromInt(125)) {
		t.Errorf("destination balance = %s, want 125", output.ToWallet.Balance)
	}

	if len(repo.savedLegs) != 2 {
		t.Fatalf("len(legs) = %d, want 2", len(repo.savedLegs))
	}
	expense, income := repo.savedLegs[0], repo.savedLegs[1]
	if expense.Type != entity.TransactionTypeExpense || income.Type != entity.TransactionTypeIncome {
		t.Errorf("leg types = %s/%s, want expense/income", expense.Type, income.Type)
	}
	if expense.Category != TransferCategory || income.Category != TransferCategory {
		t.Errorf("leg categories = %s/%s, want %s", expense.Category, income.Category, TransferCategory)
	}
	if expense.Description != "Transfer to Savings" {
		t.Errorf("expense description = %q", expense.Description)
	}
	if income.Description != "Transfer from Checking" {
		t.Errorf("income description = %q", income.Description)
	}
}

func TestTransferMoneyKeepsCustomDescription(t *testing.T) {
	repo := newFakeWalletRepository(
		bankWallet(1, "Checking", 100),
		bankWallet(2, "Savings", 0),
	)
	uc := NewTransferMoneyUseCase(repo)

	_, err := uc.Execute(context.Background(), TransferMoneyInput{
		FromWalletID: 1,
		ToWalletID:   2,
		Amount:       decimal.NewFromInt(10),
		Description:  "Rent share",
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if repo.savedLegs[0].Description != "Rent share" {
		t.Errorf("expense description = %q, want \"Rent share\"", repo.savedLegs[0].Description)
	}
}

func TestTransferMoneyRejectsBadInput(t *testing.T) {
	repo := newFakeWalletRepository(
		bankWallet(1, "Checking", 100),
		bankWallet(2, "Savings", 0),
	)
	uc := NewTransferMoneyUseCase(repo)

	tests := []struct {
		name     string
		input    TransferMoneyInput
		wantCode domainerror.WalletErrorCode
	}{
		{
			name:     "zero amount",
			input:    TransferMoneyInput{FromWalletID: 1, ToWalletID: 2, Amount: decimal.Zero},
			wantCode: domainerror.ErrCodeInvalidTransferAmount,
		},
		{
			name:     "negative amount",
			input:    TransferMoneyInput{FromWalletID: 1, ToWalletID: 2, Amount: decimal.NewFromInt(-5)},
			wantCode: domainerror.ErrCodeInvalidTransferAmount,
		},
		{
			name:     "same wallet",
			input:    TransferMoneyInput{FromWalletID: 1, ToWalletID: 1, Amount: decimal.NewFromInt(5)},
			wantCode: domainerror.ErrCodeSameWalletTransfer,
		},
		{
			name:     "missing source",
			input:    TransferMoneyInput{FromWalletID: 99, ToWalletID: 2, Amount: decimal.NewFromInt(5)},
			wantCode: domainerror.ErrCodeWalletNotFound,
		},
		{
			name:     "insufficient funds",
			input:    TransferMoneyInput{FromWalletID: 1, ToWalletID: 2, Amount: decimal.NewFromInt(500)},
			wantCode: domainerror.ErrCodeInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.input)
			var wltErr *domainerror.WalletError
			if !errors.As(err, &wltErr) {
				t.Fatalf("err = %v, want *WalletError", err)
			}
			if wltErr.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", wltErr.Code, tt.wantCode)
			}
			if repo.saveCalled {
				t.Error("SaveTransfer should not be called on validation failure")
			}
		})
	}
}

func TestTransferMoneyCreditDestinationAdjustsLoan(t *testing.T) {
	loan := decimal.NewFromInt(300)
	credit := &entity.Wallet{
		ID:        2,
		Name:      "Card",
		Balance:   decimal.Zero,
		Type:      entity.WalletTypeCredit,
		Loan:      &loan,
		CreatedAt: time.Now().UTC(),
	}
	repo := newFakeWalletRepository(bankWallet(1, "Checking", 500), credit)
	uc := NewTransferMoneyUseCase(repo)

	output, err := uc.Execute(context.Background(), TransferMoneyInput{
		FromWalletID: 1,
		ToWalletID:   2,
		Amount:       decimal.NewFromInt(100),
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if !output.FromWallet.Balance.Equal(decimal.NewFromInt(400)) {
		t.Errorf("source balance = %s, want 400", output.FromWallet.Balance)
	}
	if output.ToWallet.Loan == nil || !output.ToWallet.Loan.Equal(decimal.NewFromInt(400)) {
		t.Errorf("destination loan = %v, want 400", output.ToWallet.Loan)
	}
}
