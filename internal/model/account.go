package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Category classifies accounts for interest purposes.
type Category string

const (
	CategorySavings Category = "savings"
	CategoryCurrent Category = "current"
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return c == CategorySavings || c == CategoryCurrent
}

// Label returns the display name ("Savings", "Current").
func (c Category) Label() string {
	switch c {
	case CategorySavings:
		return "Savings"
	case CategoryCurrent:
		return "Current"
	default:
		return string(c)
	}
}

// ParseCategory accepts "savings"/"current" in any case.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown account category %q", s)
	}
	return c, nil
}

// AccountRecord is the persisted shape of an account: one row of the snapshot file.
type AccountRecord struct {
	Number   string
	Holder   string
	Category Category
	Balance  decimal.Decimal
}

// AccountSummary is a read-only listing row.
type AccountSummary struct {
	Number       string
	Holder       string
	Category     Category
	Balance      decimal.Decimal
	Transactions int
}
