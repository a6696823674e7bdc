package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Pramod-Kumar79/Banking-Management-System/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// tickingClock returns a clock that advances one second per call.
func tickingClock() func() time.Time {
	t := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func newTestAccount(opening string) *Account {
	return newAccount("ACCT1001", "Alice", "1234", model.CategorySavings, dec(opening), tickingClock())
}

func newTestLedger(opts ...Option) *Ledger {
	return New(append([]Option{WithClock(tickingClock())}, opts...)...)
}
