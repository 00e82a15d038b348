package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/phrazzld/depot/internal/domain"
	"github.com/phrazzld/depot/internal/store"
)

// seedAccounts is the fixed sample data the finance demo opens on every run.
var seedAccounts = []struct {
	number  string
	owner   string
	kind    domain.AccountKind
	balance float64
}{
	{"CHK-100", "Alice Smith", domain.AccountKindChecking, 500.00},
	{"SAV-200", "Alice Smith", domain.AccountKindSavings, 1200.00},
	{"CHK-300", "Brian Jones", domain.AccountKindChecking, 75.00},
}

// FinanceService runs the finance transaction demo: a keyed repository of
// accounts plus an append-only log recording every attempted transaction,
// applied or skipped.
type FinanceService struct {
	accounts     *store.KeyedRepository[string, *domain.Account]
	transactions *store.RecordLog[*domain.Transaction]
	out          io.Writer
	logger       *slog.Logger
}

// NewFinanceService creates the finance demo service. If out is nil,
// os.Stdout is used; if logger is nil, the default logger is used.
func NewFinanceService(out io.Writer, logger *slog.Logger) *FinanceService {
	if out == nil {
		out = os.Stdout
	}
	if logger == nil {
		logger = slog.Default()
	}

	validate := func(a *domain.Account) error { return a.Validate() }

	return &FinanceService{
		accounts:     store.NewKeyedRepository[string]("account", validate, logger),
		transactions: store.NewRecordLog[*domain.Transaction](),
		out:          out,
		logger:       logger.With(slog.String("component", "finance_service")),
	}
}

// Run opens the sample accounts and drives the scripted transaction
// sequence. A transaction that cannot be applied is skipped entirely (the
// balance is never partially adjusted), recorded as skipped, and the script
// continues.
func (s *FinanceService) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "=== Finance Transactions ===")

	for _, seed := range seedAccounts {
		s.openAccount(ctx, seed.number, seed.owner, seed.kind, seed.balance)
	}

	s.deposit(ctx, "SAV-200", 300.00)
	s.withdraw(ctx, "CHK-100", 120.00)

	// Savings has no overdraft allowance; this one is skipped.
	s.withdraw(ctx, "SAV-200", 5000.00)

	// Checking may run up to its overdraft allowance before a withdrawal
	// is refused.
	s.withdraw(ctx, "CHK-300", 250.00)
	s.withdraw(ctx, "CHK-300", 100.00)

	s.transfer(ctx, "SAV-200", "CHK-100", 200.00)
	s.transfer(ctx, "SAV-200", "CHK-100", 9999.00)

	fmt.Fprintf(s.out, "\nfinal balances (%d accounts):\n", s.accounts.Len())
	for _, a := range s.accounts.List(ctx) {
		fmt.Fprintf(s.out, "  %-8s %-14s %-8s $%10.2f\n", a.Number, a.Owner, a.Kind, a.Balance)
	}

	transactions := s.transactions.Snapshot()
	fmt.Fprintf(s.out, "\ntransaction log (%d entries):\n", len(transactions))
	for _, t := range transactions {
		fmt.Fprintf(s.out, "  %-10s %-8s $%10.2f  %s\n", t.Kind, t.Account, t.Amount, t.Status)
	}

	return nil
}

// translateAccountErr maps generic repository errors to the
// account-specific sentinels.
func translateAccountErr(err error) error {
	switch {
	case store.IsNotFoundError(err):
		return store.ErrAccountNotFound
	case store.IsDuplicateKeyError(err):
		return store.ErrAccountExists
	default:
		return err
	}
}

// openAccount inserts a new account, reporting the outcome.
func (s *FinanceService) openAccount(ctx context.Context, number, owner string, kind domain.AccountKind, balance float64) {
	account, err := domain.NewAccount(number, owner, kind, balance)
	if err != nil {
		fmt.Fprintf(s.out, "could not open account %s: %v\n", number, err)
		return
	}

	if err := s.accounts.Insert(ctx, account); err != nil {
		fmt.Fprintf(s.out, "could not open account %s: %v\n", number, translateAccountErr(err))
		return
	}
	fmt.Fprintf(s.out, "opened %s account %s for %s with $%.2f\n", kind, number, owner, balance)
}

// deposit adds funds to an account and records the transaction.
func (s *FinanceService) deposit(ctx context.Context, number string, amount float64) {
	account, err := s.accounts.Get(ctx, number)
	if err != nil {
		fmt.Fprintf(s.out, "deposit to %s failed: %v\n", number, translateAccountErr(err))
		return
	}

	if err := account.Deposit(amount); err != nil {
		s.record(domain.TransactionKindDeposit, number, amount, domain.TransactionStatusSkipped)
		fmt.Fprintf(s.out, "deposit of $%.2f to %s skipped: %v\n", amount, number, err)
		return
	}

	s.record(domain.TransactionKindDeposit, number, amount, domain.TransactionStatusApplied)
	fmt.Fprintf(s.out, "deposited $%.2f to %s (balance $%.2f)\n", amount, number, account.Balance)
}

// withdraw removes funds from an account and records the transaction.
// An insufficient-funds refusal leaves the balance exactly as it was.
func (s *FinanceService) withdraw(ctx context.Context, number string, amount float64) {
	account, err := s.accounts.Get(ctx, number)
	if err != nil {
		fmt.Fprintf(s.out, "withdrawal from %s failed: %v\n", number, translateAccountErr(err))
		return
	}

	if err := account.Withdraw(amount); err != nil {
		s.record(domain.TransactionKindWithdrawal, number, amount, domain.TransactionStatusSkipped)
		fmt.Fprintf(s.out, "withdrawal of $%.2f from %s skipped: %v\n", amount, number, err)
		return
	}

	s.record(domain.TransactionKindWithdrawal, number, amount, domain.TransactionStatusApplied)
	fmt.Fprintf(s.out, "withdrew $%.2f from %s (balance $%.2f)\n", amount, number, account.Balance)
}

// transfer moves funds between two accounts. When the withdrawal leg is
// refused the whole transfer is skipped; the deposit leg never runs with a
// failed withdrawal behind it.
func (s *FinanceService) transfer(ctx context.Context, from, to string, amount float64) {
	source, err := s.accounts.Get(ctx, from)
	if err != nil {
		fmt.Fprintf(s.out, "transfer from %s failed: %v\n", from, translateAccountErr(err))
		return
	}
	dest, err := s.accounts.Get(ctx, to)
	if err != nil {
		fmt.Fprintf(s.out, "transfer to %s failed: %v\n", to, translateAccountErr(err))
		return
	}

	if err := source.Withdraw(amount); err != nil {
		s.record(domain.TransactionKindTransfer, from, amount, domain.TransactionStatusSkipped)
		fmt.Fprintf(s.out, "transfer of $%.2f from %s to %s skipped: %v\n", amount, from, to, err)
		return
	}

	// The deposit leg cannot fail once the amount has been validated by the
	// withdrawal, but keep the same reporting shape for symmetry.
	if err := dest.Deposit(amount); err != nil {
		source.Balance += amount
		s.record(domain.TransactionKindTransfer, from, amount, domain.TransactionStatusSkipped)
		fmt.Fprintf(s.out, "transfer of $%.2f from %s to %s skipped: %v\n", amount, from, to, err)
		return
	}

	s.record(domain.TransactionKindTransfer, from, amount, domain.TransactionStatusApplied)
	fmt.Fprintf(s.out, "transferred $%.2f from %s to %s\n", amount, from, to)
}

// record appends a transaction to the log.
func (s *FinanceService) record(kind domain.TransactionKind, account string, amount float64, status domain.TransactionStatus) {
	t := domain.NewTransaction(kind, account, amount, status)
	s.transactions.Append(t)
	s.logger.Debug("transaction recorded",
		slog.String("id", t.ID.String()),
		slog.String("kind", string(kind)),
		slog.String("account", account),
		slog.String("status", string(status)))
}
