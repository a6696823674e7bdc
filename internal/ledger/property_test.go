package ledger

import (
	"math/rand/v2"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pramod-Kumar79/Banking-Management-System/internal/model"
)

// randomAmount returns a value in cents; roughly one in ten is non-positive.
func randomAmount(r *rand.Rand) decimal.Decimal {
	if r.IntN(10) == 0 {
		return decimal.New(-int64(r.IntN(500)), -2)
	}
	return decimal.New(int64(r.IntN(50_000)+1), -2)
}

func TestRandomOperationsPreserveInvariants(t *testing.T) {
	for seed := range uint64(5) {
		r := rand.New(rand.NewPCG(seed, 42))
		l := newTestLedger()

		var accts []*Account
		for i := range 4 {
			cat := model.CategorySavings
			if i%2 == 1 {
				cat = model.CategoryCurrent
			}
			a, err := l.CreateAccount("holder", "1234", cat, decimal.New(int64(r.IntN(100_000)), -2))
			require.NoError(t, err)
			accts = append(accts, a)
		}

		for step := range 500 {
			a := accts[r.IntN(len(accts))]
			before := a.Balance()
			beforeLen := len(a.Transactions())
			amt := randomAmount(r)

			switch r.IntN(5) {
			case 0:
				err := a.Deposit(amt, "")
				if !amt.IsPositive() {
					assert.ErrorIs(t, err, ErrInvalidAmount)
					assert.True(t, before.Equal(a.Balance()))
					assert.Len(t, a.Transactions(), beforeLen)
				}
			case 1:
				ok, err := a.Withdraw(amt, "")
				switch {
				case !amt.IsPositive():
					assert.ErrorIs(t, err, ErrInvalidAmount)
					assert.Len(t, a.Transactions(), beforeLen)
				case amt.GreaterThan(before):
					assert.False(t, ok, "withdraw %s from %s", amt, before)
					assert.True(t, before.Equal(a.Balance()))
				default:
					assert.True(t, ok)
				}
			case 2:
				dest := accts[r.IntN(len(accts))]
				destBefore := dest.Balance()
				ok, err := l.Transfer(a, dest.Number(), amt)
				if dest == a {
					assert.ErrorIs(t, err, ErrSameAccount)
					break
				}
				if ok {
					assert.True(t, before.Add(destBefore).Equal(a.Balance().Add(dest.Balance())))
				} else {
					assert.True(t, before.Equal(a.Balance()))
					assert.True(t, destBefore.Equal(dest.Balance()))
				}
			case 3:
				require.NoError(t, l.AccrueInterestAll())
			case 4:
				require.NoError(t, a.ChangePIN("4321"))
				assert.True(t, before.Equal(a.Balance()))
			}

			for _, acct := range accts {
				require.False(t, acct.Balance().IsNegative(), "seed %d step %d", seed, step)
			}
		}

		assert.Empty(t, l.Audit(), "seed %d", seed)
	}
}
