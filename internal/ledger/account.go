package ledger

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Pramod-Kumar79/Banking-Management-System/internal/model"
)

const (
	descDeposit           = "Deposit"
	descWithdrawal        = "Withdrawal"
	descInterest          = "Interest Credited"
	descCredentialChanged = "credential changed"
)

var monthsPerYear = decimal.NewFromInt(12)

// Account is a single holder's balance and append-only history.
// All methods are safe for concurrent use.
type Account struct {
	mu       sync.Mutex
	number   string
	holder   string
	category model.Category
	pin      string
	opening  decimal.Decimal
	balance  decimal.Decimal
	log      []model.Transaction
	clock    func() time.Time
}

func newAccount(number, holder, pin string, category model.Category, opening decimal.Decimal, clock func() time.Time) *Account {
	return &Account{
		number:   number,
		holder:   holder,
		category: category,
		pin:      pin,
		opening:  opening,
		balance:  opening,
		clock:    clock,
	}
}

// Number returns the immutable account number.
func (a *Account) Number() string { return a.number }

// HolderName returns the account holder's name.
func (a *Account) HolderName() string { return a.holder }

// Category returns the immutable account category.
func (a *Account) Category() model.Category { return a.category }

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// VerifyPIN reports whether candidate matches the stored PIN exactly.
func (a *Account) VerifyPIN(candidate string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pin == candidate
}

// ChangePIN replaces the PIN and records a zero-amount adjustment.
func (a *Account) ChangePIN(newPIN string) error {
	if newPIN == "" {
		return fmt.Errorf("changing PIN on %s: %w", a.number, ErrInvalidCredential)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pin = newPIN
	a.record(model.KindAdjustment, decimal.Zero, descCredentialChanged, "")
	return nil
}

// Deposit credits amount. An empty description defaults to "Deposit".
func (a *Account) Deposit(amount decimal.Decimal, description string) error {
	if !amount.IsPositive() {
		return fmt.Errorf("deposit %s: %w", amount, ErrInvalidAmount)
	}
	if description == "" {
		description = descDeposit
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.record(model.KindDeposit, amount, description, "")
	return nil
}

// Withdraw debits amount and reports whether funds were sufficient.
// Insufficient funds is not an error: it returns false and changes nothing.
func (a *Account) Withdraw(amount decimal.Decimal, description string) (bool, error) {
	if !amount.IsPositive() {
		return false, fmt.Errorf("withdraw %s: %w", amount, ErrInvalidAmount)
	}
	if description == "" {
		description = descWithdrawal
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.balance.LessThan(amount) {
		return false, nil
	}
	a.record(model.KindWithdrawal, amount.Neg(), description, "")
	return true, nil
}

// AccrueInterest credits one month of interest at annualRate, rounded to cents,
// and returns the amount credited. A zero credit is still recorded.
func (a *Account) AccrueInterest(annualRate decimal.Decimal) (decimal.Decimal, error) {
	if !annualRate.IsPositive() {
		return decimal.Zero, fmt.Errorf("interest rate %s: %w", annualRate, ErrInvalidAmount)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	interest := a.balance.Mul(annualRate).Div(monthsPerYear).Round(2)
	a.record(model.KindInterest, interest, descInterest, "")
	return interest, nil
}

// Statement returns up to maxCount of the most recent transactions, oldest first.
func (a *Account) Statement(maxCount int) []model.Transaction {
	if maxCount <= 0 {
		return []model.Transaction{}
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	start := max(len(a.log)-maxCount, 0)
	out := make([]model.Transaction, len(a.log)-start)
	copy(out, a.log[start:])
	return out
}

// Transactions returns a copy of the full history.
func (a *Account) Transactions() []model.Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]model.Transaction, len(a.log))
	copy(out, a.log)
	return out
}

// Summary returns a read-only projection of the account.
func (a *Account) Summary() model.AccountSummary {
	a.mu.Lock()
	defer a.mu.Unlock()
	return model.AccountSummary{
		Number:       a.number,
		Holder:       a.holder,
		Category:     a.category,
		Balance:      a.balance,
		Transactions: len(a.log),
	}
}

func (a *Account) snapshot() model.AccountRecord {
	a.mu.Lock()
	defer a.mu.Unlock()
	return model.AccountRecord{
		Number:   a.number,
		Holder:   a.holder,
		Category: a.category,
		Balance:  a.balance,
	}
}

// record applies amount and appends exactly one transaction. Callers hold a.mu.
// A negative resulting balance is a defect in the caller, not a business outcome.
func (a *Account) record(kind model.Kind, amount decimal.Decimal, description, counterparty string) model.Transaction {
	next := a.balance.Add(amount)
	if next.IsNegative() {
		panic(fmt.Sprintf("ledger: %s on %s would leave balance %s", kind, a.number, next.StringFixed(2)))
	}

	ts := a.clock()
	if n := len(a.log); n > 0 && ts.Before(a.log[n-1].Timestamp) {
		ts = a.log[n-1].Timestamp
	}

	a.balance = next
	t := model.Transaction{
		ID:           uuid.New(),
		Account:      a.number,
		Timestamp:    ts,
		Kind:         kind,
		Amount:       amount,
		Description:  description,
		BalanceAfter: next,
		Counterparty: counterparty,
	}
	a.log = append(a.log, t)
	return t
}
