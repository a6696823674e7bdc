package ledger

// DefaultMaxAttempts is the login budget used by the interactive shell.
const DefaultMaxAttempts = 3

// Attempts is a caller-held login budget. It is advisory and session scoped:
// nothing about it is persisted or shared between sessions.
type Attempts struct {
	limit     int
	remaining int
}

// NewAttempts returns a full budget of limit attempts.
func NewAttempts(limit int) *Attempts {
	return &Attempts{limit: limit, remaining: limit}
}

// Remaining returns the attempts left before lockout.
func (a *Attempts) Remaining() int { return a.remaining }

// Exhausted reports whether no attempts remain.
func (a *Attempts) Exhausted() bool { return a.remaining <= 0 }

// Reset restores the budget to its initial value.
func (a *Attempts) Reset() { a.remaining = a.limit }

func (a *Attempts) consume() {
	if a.remaining > 0 {
		a.remaining--
	}
}
