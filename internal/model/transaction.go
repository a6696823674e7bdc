package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind tags what produced a transaction.
type Kind string

const (
	KindDeposit     Kind = "deposit"
	KindWithdrawal  Kind = "withdrawal"
	KindTransferIn  Kind = "transfer_in"
	KindTransferOut Kind = "transfer_out"
	KindInterest    Kind = "interest"
	KindAdjustment  Kind = "adjustment" // non-monetary, e.g. PIN change
	KindReversal    Kind = "reversal"   // compensating credit for a failed transfer
)

// Direction is the coarse credit/debit classification derived from the amount sign.
type Direction string

const (
	DirectionCredit      Direction = "credit"
	DirectionDebit       Direction = "debit"
	DirectionNonMonetary Direction = "non-monetary"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case KindDeposit, KindWithdrawal, KindTransferIn, KindTransferOut,
		KindInterest, KindAdjustment, KindReversal:
		return true
	}
	return false
}

// Direction returns the sign class every transaction of this kind must have.
// Interest may round to zero and is still reported as a credit.
func (k Kind) Direction() Direction {
	switch k {
	case KindWithdrawal, KindTransferOut:
		return DirectionDebit
	case KindAdjustment:
		return DirectionNonMonetary
	default:
		return DirectionCredit
	}
}

// Transaction is one immutable entry in an account's history.
type Transaction struct {
	ID           uuid.UUID
	Account      string
	Timestamp    time.Time
	Kind         Kind
	Amount       decimal.Decimal // signed: positive credit, negative debit
	Description  string
	BalanceAfter decimal.Decimal
	Counterparty string // other account for transfer legs
}

// Direction classifies t by the sign of its amount.
func (t Transaction) Direction() Direction {
	switch t.Amount.Sign() {
	case 1:
		return DirectionCredit
	case -1:
		return DirectionDebit
	default:
		return DirectionNonMonetary
	}
}
