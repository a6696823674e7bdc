package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Pramod-Kumar79/Banking-Management-System/internal/model"
)

// InvariantError describes a single invariant violation found by Audit.
type InvariantError struct {
	Invariant   int
	Account     string
	Description string
}

func (e InvariantError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.Account, e.Description)
}

// Audit recomputes every ledger invariant and returns the violations found.
// A healthy ledger returns nil.
func (l *Ledger) Audit() []InvariantError {
	l.mu.RLock()
	keyed := make(map[string]*Account, len(l.accounts))
	for k, a := range l.accounts {
		keyed[k] = a
	}
	l.mu.RUnlock()

	var errs []InvariantError
	for _, a := range l.sorted() {
		errs = append(errs, a.Verify()...)
	}

	// Invariant 5: map keys match account identity.
	for k, a := range keyed {
		if k != a.number {
			errs = append(errs, InvariantError{
				Invariant:   5,
				Account:     k,
				Description: fmt.Sprintf("keyed as %s but numbered %s", k, a.number),
			})
		}
	}
	return errs
}

// Verify recomputes the single-account invariants.
func (a *Account) Verify() []InvariantError {
	a.mu.Lock()
	defer a.mu.Unlock()
	return verifyHistory(a.number, a.opening, a.balance, a.log)
}

func verifyHistory(number string, opening, balance decimal.Decimal, log []model.Transaction) []InvariantError {
	var errs []InvariantError

	running := opening
	for i, t := range log {
		running = running.Add(t.Amount)

		// Invariant 3: each snapshot is the running total.
		if !t.BalanceAfter.Equal(running) {
			errs = append(errs, InvariantError{
				Invariant:   3,
				Account:     number,
				Description: fmt.Sprintf("transaction %d: balance after %s, expected %s", i+1, t.BalanceAfter.StringFixed(2), running.StringFixed(2)),
			})
		}

		// Invariant 4: chronological order.
		if i > 0 && t.Timestamp.Before(log[i-1].Timestamp) {
			errs = append(errs, InvariantError{
				Invariant:   4,
				Account:     number,
				Description: fmt.Sprintf("transaction %d recorded before its predecessor", i+1),
			})
		}

		// Invariant 5: the transaction belongs to this account.
		if t.Account != number {
			errs = append(errs, InvariantError{
				Invariant:   5,
				Account:     number,
				Description: fmt.Sprintf("transaction %d tagged with account %s", i+1, t.Account),
			})
		}

		// Invariant 6: kind agrees with the amount sign.
		if !signMatchesKind(t) {
			errs = append(errs, InvariantError{
				Invariant:   6,
				Account:     number,
				Description: fmt.Sprintf("transaction %d: %s with amount %s", i+1, t.Kind, t.Amount.StringFixed(2)),
			})
		}
	}

	// Invariant 1: balance equals opening plus all recorded amounts.
	if !balance.Equal(running) {
		errs = append(errs, InvariantError{
			Invariant:   1,
			Account:     number,
			Description: fmt.Sprintf("balance %s != opening %s + transactions (%s)", balance.StringFixed(2), opening.StringFixed(2), running.StringFixed(2)),
		})
	}

	// Invariant 2: never negative.
	if balance.IsNegative() {
		errs = append(errs, InvariantError{
			Invariant:   2,
			Account:     number,
			Description: fmt.Sprintf("negative balance %s", balance.StringFixed(2)),
		})
	}
	return errs
}

func signMatchesKind(t model.Transaction) bool {
	if !t.Kind.Valid() {
		return false
	}
	got := t.Direction()
	want := t.Kind.Direction()
	if t.Kind == model.KindInterest && got == model.DirectionNonMonetary {
		return true
	}
	return got == want
}
