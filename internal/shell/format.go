package shell

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/Pramod-Kumar79/Banking-Management-System/internal/model"
)

const timeLayout = "2006-01-02 15:04:05"

var kindLabels = map[model.Kind]string{
	model.KindDeposit:     "Deposit",
	model.KindWithdrawal:  "Withdrawal",
	model.KindTransferIn:  "Transfer In",
	model.KindTransferOut: "Transfer Out",
	model.KindInterest:    "Interest",
	model.KindAdjustment:  "Adjustment",
	model.KindReversal:    "Reversal",
}

// FormatMoney renders d as dollars with thousands separators, e.g. "-$1,234.50".
func FormatMoney(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	s := d.StringFixed(2)
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + "$" + b.String() + "." + frac
}

// FormatRate renders an annual rate as a percentage, e.g. 0.045 as "4.5%".
func FormatRate(rate decimal.Decimal) string {
	return rate.Shift(2).String() + "%"
}

// KindLabel returns the display name for a transaction kind.
func KindLabel(k model.Kind) string {
	if l, ok := kindLabels[k]; ok {
		return l
	}
	return string(k)
}

// WriteStatement renders an account statement.
func WriteStatement(w io.Writer, acct model.AccountSummary, txns []model.Transaction, count int) error {
	fmt.Fprintf(w, "\nAccount Statement for %s (%s)\n", acct.Holder, acct.Number)
	fmt.Fprintf(w, "Current Balance: %s\n\n", FormatMoney(acct.Balance))

	if len(txns) == 0 {
		fmt.Fprintln(w, "No transactions yet.")
		return nil
	}

	fmt.Fprintf(w, "Last %d transactions:\n", count)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Date/Time\tType\tAmount\tBalance\tDescription")
	for _, t := range txns {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			t.Timestamp.Local().Format(timeLayout),
			KindLabel(t.Kind),
			FormatMoney(t.Amount),
			FormatMoney(t.BalanceAfter),
			t.Description,
		)
	}
	return tw.Flush()
}

// WriteAccounts renders the admin account listing.
func WriteAccounts(w io.Writer, accounts []model.AccountSummary) error {
	if len(accounts) == 0 {
		fmt.Fprintln(w, "No accounts.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Account\tHolder\tType\tBalance")
	total := decimal.Zero
	for _, a := range accounts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", a.Number, a.Holder, a.Category.Label(), FormatMoney(a.Balance))
		total = total.Add(a.Balance)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "\n%d accounts, total deposits %s\n", len(accounts), FormatMoney(total))
	return nil
}
