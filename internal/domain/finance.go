package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AccountKind identifies the behavior variant of an account. Kind-specific
// rules are looked up in a dispatch table rather than attached to subtypes.
type AccountKind string

// Possible account kinds
const (
	AccountKindChecking AccountKind = "checking"
	AccountKindSavings  AccountKind = "savings"
)

// checkingOverdraftLimit is how far below zero a checking account may go.
const checkingOverdraftLimit = 200.00

// Common validation and transaction errors for Account
var (
	ErrAccountNumberEmpty = errors.New("account number cannot be empty")
	ErrAccountOwnerEmpty  = errors.New("account owner cannot be empty")
	ErrInvalidAccountKind = errors.New("invalid account kind")
	ErrNonPositiveAmount  = errors.New("amount must be positive")

	// ErrInsufficientFunds is returned when a withdrawal would take the
	// account past its kind's limit. The transaction is skipped entirely:
	// the balance is never partially applied.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// withdrawalPolicy decides whether an account with the given balance may
// withdraw the given amount.
type withdrawalPolicy func(balance, amount float64) error

// withdrawalPolicies dispatches withdrawal rules by account kind.
var withdrawalPolicies = map[AccountKind]withdrawalPolicy{
	AccountKindChecking: func(balance, amount float64) error {
		if balance-amount < -checkingOverdraftLimit {
			return fmt.Errorf("%w: overdraft limit %.2f exceeded",
				ErrInsufficientFunds, checkingOverdraftLimit)
		}
		return nil
	},
	AccountKindSavings: func(balance, amount float64) error {
		if balance-amount < 0 {
			return ErrInsufficientFunds
		}
		return nil
	},
}

// isValidAccountKind checks if the given kind is a valid AccountKind.
func isValidAccountKind(kind AccountKind) bool {
	_, ok := withdrawalPolicies[kind]
	return ok
}

// Account represents a bank account in the finance transaction demo.
type Account struct {
	Number  string      `json:"number"`
	Owner   string      `json:"owner"`
	Kind    AccountKind `json:"kind"`
	Balance float64     `json:"balance"`
}

// Key returns the unique key the account is stored under.
func (a *Account) Key() string {
	return a.Number
}

// NewAccount creates a new Account with the given number, owner, kind, and
// opening balance. Returns an error if validation fails.
func NewAccount(number, owner string, kind AccountKind, balance float64) (*Account, error) {
	account := &Account{
		Number:  number,
		Owner:   owner,
		Kind:    kind,
		Balance: balance,
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	return account, nil
}

// Validate checks if the Account has valid data.
func (a *Account) Validate() error {
	if a.Number == "" {
		return ErrAccountNumberEmpty
	}

	if a.Owner == "" {
		return ErrAccountOwnerEmpty
	}

	if !isValidAccountKind(a.Kind) {
		return ErrInvalidAccountKind
	}

	return nil
}

// Deposit adds amount to the account balance.
// Returns ErrNonPositiveAmount if amount is not positive.
func (a *Account) Deposit(amount float64) error {
	if amount <= 0 {
		return ErrNonPositiveAmount
	}

	a.Balance += amount
	return nil
}

// Withdraw removes amount from the account balance, subject to the
// withdrawal policy of the account's kind. On ErrInsufficientFunds the
// balance is left exactly as it was: the withdrawal is skipped, never
// partially applied.
func (a *Account) Withdraw(amount float64) error {
	if amount <= 0 {
		return ErrNonPositiveAmount
	}

	policy, ok := withdrawalPolicies[a.Kind]
	if !ok {
		return ErrInvalidAccountKind
	}

	if err := policy(a.Balance, amount); err != nil {
		return err
	}

	a.Balance -= amount
	return nil
}

// TransactionKind identifies the type of a recorded transaction.
type TransactionKind string

// Possible transaction kinds
const (
	TransactionKindDeposit    TransactionKind = "deposit"
	TransactionKindWithdrawal TransactionKind = "withdrawal"
	TransactionKindTransfer   TransactionKind = "transfer"
)

// TransactionStatus records whether a transaction was applied or skipped.
type TransactionStatus string

// Possible transaction statuses
const (
	TransactionStatusApplied TransactionStatus = "applied"
	TransactionStatusSkipped TransactionStatus = "skipped"
)

// Transaction is the immutable record of one attempted operation against an
// account, appended to the finance demo's transaction log whether or not the
// operation was applied.
type Transaction struct {
	ID         uuid.UUID         `json:"id"`
	Kind       TransactionKind   `json:"kind"`
	Account    string            `json:"account"`
	Amount     float64           `json:"amount"`
	Status     TransactionStatus `json:"status"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// NewTransaction creates a new Transaction record with a generated ID,
// stamped with the current time.
func NewTransaction(kind TransactionKind, account string, amount float64, status TransactionStatus) *Transaction {
	return &Transaction{
		ID:         uuid.New(),
		Kind:       kind,
		Account:    account,
		Amount:     amount,
		Status:     status,
		OccurredAt: time.Now().UTC(),
	}
}
