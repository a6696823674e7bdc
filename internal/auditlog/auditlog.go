package auditlog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Pramod-Kumar79/Banking-Management-System/internal/model"
)

// Header is the CSV header for the audit log.
const Header = "timestamp,transaction_id,account,kind,amount,balance_after,counterparty,description"

const (
	numFields       = 8
	colTimestamp    = 0
	colID           = 1
	colAccount      = 2
	colKind         = 3
	colAmount       = 4
	colBalanceAfter = 5
	colCounterparty = 6
	colDescription  = 7
)

// MarshalTransaction converts a Transaction to a CSV row.
func MarshalTransaction(t model.Transaction) []string {
	row := make([]string, numFields)
	row[colTimestamp] = t.Timestamp.Format(time.RFC3339Nano)
	row[colID] = t.ID.String()
	row[colAccount] = t.Account
	row[colKind] = string(t.Kind)
	row[colAmount] = t.Amount.StringFixed(2)
	row[colBalanceAfter] = t.BalanceAfter.StringFixed(2)
	row[colCounterparty] = t.Counterparty
	row[colDescription] = t.Description
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339Nano, record[colTimestamp])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	txnID, err := uuid.Parse(record[colID])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing transaction_id %q: %w", record[colID], err)
	}

	kind := model.Kind(record[colKind])
	if !kind.Valid() {
		return model.Transaction{}, fmt.Errorf("unknown kind %q", record[colKind])
	}

	amount, err := model.ParseAmount(record[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("amount: %w", err)
	}

	after, err := model.ParseAmount(record[colBalanceAfter])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("balance_after: %w", err)
	}

	return model.Transaction{
		ID:           txnID,
		Account:      record[colAccount],
		Timestamp:    ts,
		Kind:         kind,
		Amount:       amount,
		Description:  record[colDescription],
		BalanceAfter: after,
		Counterparty: record[colCounterparty],
	}, nil
}

// Append writes transactions to the log at path, creating the file and header if needed.
func Append(path string, txns []model.Transaction) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating audit log dir: %w", err)
	}

	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening audit log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, t := range txns {
		if err := cw.Write(MarshalTransaction(t)); err != nil {
			return fmt.Errorf("writing transaction %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Read returns every transaction in the log at path.
// Returns an empty slice if the file does not exist.
func Read(path string) ([]model.Transaction, error) {
	var txns []model.Transaction
	err := scan(path, func(t model.Transaction) {
		txns = append(txns, t)
	})
	return txns, err
}

// ReadAccount returns the entries recorded for number, in log order.
func ReadAccount(path, number string) ([]model.Transaction, error) {
	var txns []model.Transaction
	err := scan(path, func(t model.Transaction) {
		if t.Account == number {
			txns = append(txns, t)
		}
	})
	return txns, err
}

// Accounts calls observe with the account and counterparty number of every
// entry in the log. A missing log has no entries.
func Accounts(path string, observe func(number string)) error {
	return scan(path, func(t model.Transaction) {
		observe(t.Account)
		if t.Counterparty != "" {
			observe(t.Counterparty)
		}
	})
}

// scan decodes the log one row at a time, stopping at the first bad row.
func scan(path string, fn func(model.Transaction)) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("opening audit log: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = numFields
	cr.ReuseRecord = true

	for row := 1; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading audit log CSV: %w", err)
		}
		if row == 1 && strings.Join(rec, ",") == Header {
			continue
		}
		t, err := UnmarshalTransaction(rec)
		if err != nil {
			return fmt.Errorf("row %d: %w", row, err)
		}
		fn(t)
	}
}
