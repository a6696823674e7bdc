package ledger

import "errors"

var (
	// ErrInvalidAmount is returned for a non-positive amount or rate.
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrNotFound is returned when an account number is unknown.
	ErrNotFound = errors.New("account not found")
	// ErrAuthenticationFailed is wrapped by every Authenticate failure, so callers
	// can report a single message without revealing whether the account exists.
	ErrAuthenticationFailed = errors.New("authentication failed")
	// ErrInvalidCredential is returned for a wrong or empty PIN.
	ErrInvalidCredential = errors.New("invalid credential")
	// ErrLockedOut is returned once an Attempts budget is exhausted.
	ErrLockedOut = errors.New("too many failed attempts")
	// ErrSameAccount is returned for a transfer whose source is its destination.
	ErrSameAccount = errors.New("source and destination are the same account")
	// ErrInvalidCategory is returned for a category other than savings or current.
	ErrInvalidCategory = errors.New("invalid account category")
	// ErrTransferReversed means the debit leg was compensated after the credit leg failed.
	ErrTransferReversed = errors.New("transfer reversed")
	// ErrNotEmpty is returned by Restore when the ledger already holds accounts.
	ErrNotEmpty = errors.New("ledger already holds accounts")
)
