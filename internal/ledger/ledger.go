package ledger

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Pramod-Kumar79/Banking-Management-System/internal/id"
	"github.com/Pramod-Kumar79/Banking-Management-System/internal/model"
)

// DefaultPlaceholderPIN is assigned to accounts rebuilt by Restore.
const DefaultPlaceholderPIN = "0000"

// Rates maps each category to its annual nominal interest rate.
type Rates map[model.Category]decimal.Decimal

// DefaultRates returns Savings 4%/yr and Current 1%/yr.
func DefaultRates() Rates {
	return Rates{
		model.CategorySavings: decimal.RequireFromString("0.04"),
		model.CategoryCurrent: decimal.RequireFromString("0.01"),
	}
}

// creditFunc applies the credit leg of a transfer. Both accounts are locked.
type creditFunc func(dest *Account, amount decimal.Decimal, description, counterparty string) error

// Ledger owns every account and the operations that span more than one.
type Ledger struct {
	mu             sync.RWMutex
	accounts       map[string]*Account
	seq            *id.Sequence
	rates          Rates
	placeholderPIN string
	clock          func() time.Time
	logger         *zap.Logger
	credit         creditFunc
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Ledger) { l.logger = logger }
}

// WithSequence injects the account-number generator.
func WithSequence(seq *id.Sequence) Option {
	return func(l *Ledger) { l.seq = seq }
}

// WithClock overrides time.Now for transaction timestamps.
func WithClock(clock func() time.Time) Option {
	return func(l *Ledger) { l.clock = clock }
}

// WithRates overrides the per-category interest rates.
func WithRates(rates Rates) Option {
	return func(l *Ledger) { l.rates = rates }
}

// WithPlaceholderPIN sets the PIN given to restored accounts.
func WithPlaceholderPIN(pin string) Option {
	return func(l *Ledger) { l.placeholderPIN = pin }
}

// New creates an empty Ledger.
func New(opts ...Option) *Ledger {
	l := &Ledger{
		accounts:       make(map[string]*Account),
		seq:            id.NewSequence(id.DefaultPrefix, id.DefaultBase),
		rates:          DefaultRates(),
		placeholderPIN: DefaultPlaceholderPIN,
		clock:          time.Now,
		logger:         zap.NewNop(),
		credit:         creditTransfer,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// CreateAccount opens an account with a freshly generated number.
// Rejected requests do not consume a number.
func (l *Ledger) CreateAccount(holder, pin string, category model.Category, initialDeposit decimal.Decimal) (*Account, error) {
	if initialDeposit.IsNegative() {
		return nil, fmt.Errorf("initial deposit %s: %w", initialDeposit, ErrInvalidAmount)
	}
	if !category.Valid() {
		return nil, fmt.Errorf("category %q: %w", category, ErrInvalidCategory)
	}
	if pin == "" {
		return nil, fmt.Errorf("empty PIN: %w", ErrInvalidCredential)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	number := l.seq.Next()
	for l.accounts[number] != nil {
		number = l.seq.Next()
	}
	acct := newAccount(number, holder, pin, category, initialDeposit, l.clock)
	l.accounts[number] = acct

	l.logger.Debug("account created",
		zap.String("account", number),
		zap.String("category", string(category)),
		zap.String("initial_deposit", initialDeposit.StringFixed(2)),
	)
	return acct, nil
}

// Lookup returns the account with the given number.
func (l *Ledger) Lookup(number string) (*Account, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	acct, ok := l.accounts[number]
	if !ok {
		return nil, fmt.Errorf("account %s: %w", number, ErrNotFound)
	}
	return acct, nil
}

// Len returns the number of accounts.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.accounts)
}

// Authenticate checks pin against the account. A wrong PIN consumes one attempt
// from the caller's budget; the attempt that empties it, and every call after,
// fails with ErrLockedOut. Success resets the budget. An unknown account does
// not consume an attempt. attempts may be nil.
func (l *Ledger) Authenticate(number, pin string, attempts *Attempts) (*Account, error) {
	acct, err := l.Lookup(number)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
	}
	if attempts != nil && attempts.Exhausted() {
		return nil, fmt.Errorf("%w: account %s: %w", ErrAuthenticationFailed, number, ErrLockedOut)
	}

	if !acct.VerifyPIN(pin) {
		if attempts == nil {
			return nil, fmt.Errorf("%w: account %s: %w", ErrAuthenticationFailed, number, ErrInvalidCredential)
		}
		attempts.consume()
		l.logger.Warn("login failed",
			zap.String("account", number),
			zap.Int("attempts_remaining", attempts.Remaining()),
		)
		if attempts.Exhausted() {
			return nil, fmt.Errorf("%w: account %s: %w", ErrAuthenticationFailed, number, ErrLockedOut)
		}
		return nil, fmt.Errorf("%w: account %s: %w", ErrAuthenticationFailed, number, ErrInvalidCredential)
	}

	if attempts != nil {
		attempts.Reset()
	}
	return acct, nil
}

// Transfer moves amount from source to the account numbered dest. Both accounts
// are locked, in account-number order, for the whole exchange so no observer
// sees one leg without the other. It returns false with a nil error when source
// lacks funds. If the credit leg fails after the debit, the debit is compensated
// with a reversal and ErrTransferReversed is returned.
func (l *Ledger) Transfer(source *Account, dest string, amount decimal.Decimal) (bool, error) {
	if source == nil {
		return false, fmt.Errorf("transfer source: %w", ErrNotFound)
	}
	if err := l.owns(source); err != nil {
		return false, err
	}
	destAcct, err := l.Lookup(dest)
	if err != nil {
		return false, fmt.Errorf("transfer destination: %w", err)
	}
	if destAcct == source {
		return false, fmt.Errorf("transfer to %s: %w", dest, ErrSameAccount)
	}
	if !amount.IsPositive() {
		return false, fmt.Errorf("transfer %s: %w", amount, ErrInvalidAmount)
	}

	first, second := source, destAcct
	if id.Compare(first.number, second.number) > 0 {
		first, second = second, first
	}
	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	if source.balance.LessThan(amount) {
		return false, nil
	}

	source.record(model.KindTransferOut, amount.Neg(), "Transfer to "+destAcct.number, destAcct.number)
	if err := l.credit(destAcct, amount, "Transfer from "+source.number, source.number); err != nil {
		source.record(model.KindReversal, amount, "Reversal of transfer to "+destAcct.number, destAcct.number)
		l.logger.Error("transfer credit failed, debit reversed",
			zap.String("source", source.number),
			zap.String("destination", destAcct.number),
			zap.String("amount", amount.StringFixed(2)),
			zap.Error(err),
		)
		return false, fmt.Errorf("transfer %s -> %s: %w: %w", source.number, destAcct.number, ErrTransferReversed, err)
	}

	l.logger.Debug("transfer completed",
		zap.String("source", source.number),
		zap.String("destination", destAcct.number),
		zap.String("amount", amount.StringFixed(2)),
	)
	return true, nil
}

func creditTransfer(dest *Account, amount decimal.Decimal, description, counterparty string) error {
	dest.record(model.KindTransferIn, amount, description, counterparty)
	return nil
}

// owns reports ErrNotFound for an account that is not held by this ledger.
func (l *Ledger) owns(acct *Account) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.accounts[acct.number] != acct {
		return fmt.Errorf("account %s: %w", acct.number, ErrNotFound)
	}
	return nil
}

// AccrueInterestAll credits one month of interest to every account at its
// category's rate. A failure on one account is logged and does not stop the
// rest; all failures are joined into the returned error.
func (l *Ledger) AccrueInterestAll() error {
	var errs []error
	for _, acct := range l.sorted() {
		if err := l.accrue(acct); err != nil {
			l.logger.Error("interest accrual failed",
				zap.String("account", acct.number),
				zap.Error(err),
			)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (l *Ledger) accrue(acct *Account) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("accruing interest on %s: %v", acct.number, r)
		}
	}()

	rate, ok := l.rates[acct.category]
	if !ok {
		return fmt.Errorf("no interest rate for %s (%s): %w", acct.number, acct.category, ErrInvalidCategory)
	}
	credited, err := acct.AccrueInterest(rate)
	if err != nil {
		return fmt.Errorf("accruing interest on %s: %w", acct.number, err)
	}
	l.logger.Debug("interest credited",
		zap.String("account", acct.number),
		zap.String("amount", credited.StringFixed(2)),
	)
	return nil
}

// ListAccounts returns every account ordered by account number.
func (l *Ledger) ListAccounts() []model.AccountSummary {
	accts := l.sorted()
	out := make([]model.AccountSummary, len(accts))
	for i, a := range accts {
		out[i] = a.Summary()
	}
	return out
}

// Snapshot returns the persistable state of every account, ordered by account number.
func (l *Ledger) Snapshot() []model.AccountRecord {
	accts := l.sorted()
	out := make([]model.AccountRecord, len(accts))
	for i, a := range accts {
		out[i] = a.snapshot()
	}
	return out
}

// Restore rebuilds accounts from snapshot records into an empty ledger.
// Restored accounts get the placeholder PIN and no history. The whole batch
// is validated before anything is inserted.
func (l *Ledger) Restore(records []model.AccountRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.accounts) > 0 {
		return fmt.Errorf("restoring %d accounts: %w", len(records), ErrNotEmpty)
	}

	seen := make(map[string]bool, len(records))
	for i, rec := range records {
		switch {
		case rec.Number == "":
			return fmt.Errorf("record %d: empty account number", i+1)
		case seen[rec.Number]:
			return fmt.Errorf("record %d: duplicate account number %s", i+1, rec.Number)
		case rec.Balance.IsNegative():
			return fmt.Errorf("record %d: balance %s: %w", i+1, rec.Balance, ErrInvalidAmount)
		case !rec.Category.Valid():
			return fmt.Errorf("record %d: category %q: %w", i+1, rec.Category, ErrInvalidCategory)
		}
		seen[rec.Number] = true
	}

	for _, rec := range records {
		l.accounts[rec.Number] = newAccount(rec.Number, rec.Holder, l.placeholderPIN, rec.Category, rec.Balance, l.clock)
		l.seq.Observe(rec.Number)
	}

	l.logger.Info("accounts restored", zap.Int("count", len(records)))
	return nil
}

// History returns every recorded transaction across all accounts, ordered by
// timestamp and then by account number.
func (l *Ledger) History() []model.Transaction {
	var all []model.Transaction
	for _, a := range l.sorted() {
		all = append(all, a.Transactions()...)
	}
	slices.SortStableFunc(all, func(a, b model.Transaction) int {
		if c := a.Timestamp.Compare(b.Timestamp); c != 0 {
			return c
		}
		return id.Compare(a.Account, b.Account)
	})
	return all
}

func (l *Ledger) sorted() []*Account {
	l.mu.RLock()
	accts := make([]*Account, 0, len(l.accounts))
	for _, a := range l.accounts {
		accts = append(accts, a)
	}
	l.mu.RUnlock()

	slices.SortFunc(accts, func(a, b *Account) int {
		return id.Compare(a.number, b.number)
	})
	return accts
}
