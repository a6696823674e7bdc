package snapshot

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/Pramod-Kumar79/Banking-Management-System/internal/model"
)

// Header is the first row of a snapshot file.
const Header = "account_number,holder_name,category,balance"

const (
	numFields   = 4
	colNumber   = 0
	colHolder   = 1
	colCategory = 2
	colBalance  = 3
)

// Legacy snapshot files have no header and encode the category as 0 (savings) or 1 (current).
var legacyCategories = map[string]model.Category{
	"0": model.CategorySavings,
	"1": model.CategoryCurrent,
}

// ReadRecords reads a snapshot CSV, with or without the header row.
func ReadRecords(r io.Reader) ([]model.AccountRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading snapshot CSV: %w", err)
	}

	if len(rows) == 0 {
		return nil, nil
	}

	first := 1
	if strings.Join(rows[0], ",") != Header {
		first = 0
	}

	var records []model.AccountRecord
	for i, row := range rows[first:] {
		rec, err := UnmarshalRecord(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+first+1, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// WriteRecords writes a snapshot CSV with a header row.
func WriteRecords(w io.Writer, records []model.AccountRecord) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, rec := range records {
		if err := cw.Write(MarshalRecord(rec)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalRecord converts an AccountRecord to a CSV row.
func MarshalRecord(rec model.AccountRecord) []string {
	row := make([]string, numFields)
	row[colNumber] = rec.Number
	row[colHolder] = rec.Holder
	row[colCategory] = string(rec.Category)
	row[colBalance] = rec.Balance.StringFixed(2)
	return row
}

// UnmarshalRecord converts a CSV row to an AccountRecord.
func UnmarshalRecord(row []string) (model.AccountRecord, error) {
	if len(row) != numFields {
		return model.AccountRecord{}, fmt.Errorf("expected %d fields, got %d", numFields, len(row))
	}

	number := strings.TrimSpace(row[colNumber])
	if number == "" {
		return model.AccountRecord{}, fmt.Errorf("empty account_number")
	}

	category, ok := legacyCategories[strings.TrimSpace(row[colCategory])]
	if !ok {
		var err error
		category, err = model.ParseCategory(row[colCategory])
		if err != nil {
			return model.AccountRecord{}, fmt.Errorf("parsing category: %w", err)
		}
	}

	balance, err := model.ParseAmount(row[colBalance])
	if err != nil {
		return model.AccountRecord{}, fmt.Errorf("parsing balance: %w", err)
	}

	return model.AccountRecord{
		Number:   number,
		Holder:   row[colHolder],
		Category: category,
		Balance:  balance,
	}, nil
}
