package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestNewAccount(t *testing.T) {
	t.Parallel()
	account, err := NewAccount("CHK-100", "Alice Smith", AccountKindChecking, 500)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if account.Key() != "CHK-100" {
		t.Errorf("Expected key %q, got %q", "CHK-100", account.Key())
	}

	if account.Balance != 500 {
		t.Errorf("Expected balance 500, got %.2f", account.Balance)
	}

	// Test empty number
	if _, err := NewAccount("", "Alice Smith", AccountKindChecking, 500); !errors.Is(err, ErrAccountNumberEmpty) {
		t.Errorf("Expected error %v, got %v", ErrAccountNumberEmpty, err)
	}

	// Test empty owner
	if _, err := NewAccount("CHK-100", "", AccountKindChecking, 500); !errors.Is(err, ErrAccountOwnerEmpty) {
		t.Errorf("Expected error %v, got %v", ErrAccountOwnerEmpty, err)
	}

	// Test unknown kind
	if _, err := NewAccount("CHK-100", "Alice Smith", AccountKind("money_market"), 500); !errors.Is(err, ErrInvalidAccountKind) {
		t.Errorf("Expected error %v, got %v", ErrInvalidAccountKind, err)
	}
}

func TestAccountDeposit(t *testing.T) {
	t.Parallel()
	account, _ := NewAccount("CHK-100", "Alice Smith", AccountKindChecking, 500)

	if err := account.Deposit(120); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if account.Balance != 620 {
		t.Errorf("Expected balance 620, got %.2f", account.Balance)
	}

	// Non-positive amounts are rejected and the balance is unchanged.
	if err := account.Deposit(0); !errors.Is(err, ErrNonPositiveAmount) {
		t.Errorf("Expected error %v, got %v", ErrNonPositiveAmount, err)
	}
	if err := account.Deposit(-10); !errors.Is(err, ErrNonPositiveAmount) {
		t.Errorf("Expected error %v, got %v", ErrNonPositiveAmount, err)
	}
	if account.Balance != 620 {
		t.Errorf("Expected balance to remain 620, got %.2f", account.Balance)
	}
}

func TestSavingsWithdrawInsufficientFundsIsSkipped(t *testing.T) {
	t.Parallel()
	account, _ := NewAccount("SAV-200", "Alice Smith", AccountKindSavings, 100)

	err := account.Withdraw(150)
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("Expected error %v, got %v", ErrInsufficientFunds, err)
	}

	// The withdrawal is skipped entirely, never partially applied.
	if account.Balance != 100 {
		t.Errorf("Expected balance to remain 100, got %.2f", account.Balance)
	}

	if err := account.Withdraw(100); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if account.Balance != 0 {
		t.Errorf("Expected balance 0, got %.2f", account.Balance)
	}
}

func TestCheckingWithdrawHonorsOverdraftAllowance(t *testing.T) {
	t.Parallel()
	account, _ := NewAccount("CHK-300", "Brian Jones", AccountKindChecking, 75)

	// Within the overdraft allowance.
	if err := account.Withdraw(250); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if account.Balance != -175 {
		t.Errorf("Expected balance -175, got %.2f", account.Balance)
	}

	// Past the allowance: skipped, balance untouched.
	if err := account.Withdraw(100); !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("Expected error %v, got %v", ErrInsufficientFunds, err)
	}
	if account.Balance != -175 {
		t.Errorf("Expected balance to remain -175, got %.2f", account.Balance)
	}
}

func TestWithdrawNonPositiveAmount(t *testing.T) {
	t.Parallel()
	account, _ := NewAccount("CHK-100", "Alice Smith", AccountKindChecking, 500)

	if err := account.Withdraw(0); !errors.Is(err, ErrNonPositiveAmount) {
		t.Errorf("Expected error %v, got %v", ErrNonPositiveAmount, err)
	}
	if account.Balance != 500 {
		t.Errorf("Expected balance to remain 500, got %.2f", account.Balance)
	}
}

func TestNewTransaction(t *testing.T) {
	t.Parallel()
	tx := NewTransaction(TransactionKindWithdrawal, "CHK-100", 120, TransactionStatusApplied)

	if tx.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if tx.Kind != TransactionKindWithdrawal {
		t.Errorf("Expected kind %q, got %q", TransactionKindWithdrawal, tx.Kind)
	}

	if tx.Status != TransactionStatusApplied {
		t.Errorf("Expected status %q, got %q", TransactionStatusApplied, tx.Status)
	}

	if tx.OccurredAt.IsZero() {
		t.Error("Expected non-zero OccurredAt time")
	}
}
