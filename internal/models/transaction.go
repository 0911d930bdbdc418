// Package models provides the data structures shared by the ledger and
// variance pipelines.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/syafitri453/Finance-Apps/internal/dateutils"
)

// Kind is the direction of a transaction: money coming in or going out.
type Kind string

const (
	KindIncome  Kind = "Income"
	KindExpense Kind = "Expense"
)

// ParseKind converts a string into a Kind. Matching is case-insensitive and
// also accepts the Indonesian labels found in the original data files.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income", "pemasukan":
		return KindIncome, nil
	case "expense", "pengeluaran":
		return KindExpense, nil
	default:
		return "", fmt.Errorf("unknown transaction kind: %s", s)
	}
}

// Valid reports whether the kind is one of the two known values.
func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// MarshalCSV implements the gocsv marshaller.
func (k Kind) MarshalCSV() (string, error) {
	return string(k), nil
}

// UnmarshalCSV implements the gocsv unmarshaller, normalizing label variants
// through ParseKind.
func (k *Kind) UnmarshalCSV(value string) error {
	parsed, err := ParseKind(value)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Date wraps time.Time so CSV files can carry dates in any of the common
// input formats while always being written back as ISO (YYYY-MM-DD).
type Date struct {
	time.Time
}

// NewDate builds a Date truncated to the calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// MarshalCSV implements the gocsv marshaller.
func (d Date) MarshalCSV() (string, error) {
	if d.IsZero() {
		return "", nil
	}
	return dateutils.ToISODate(d.Time), nil
}

// UnmarshalCSV implements the gocsv unmarshaller, accepting the common input
// formats.
func (d *Date) UnmarshalCSV(value string) error {
	if strings.TrimSpace(value) == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := dateutils.ParseDateString(value)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Transaction represents a single dated, categorized monetary entry.
// Transactions are immutable once stored in a ledger.
type Transaction struct {
	ID       string          `csv:"-" json:"id"`
	Date     Date            `csv:"Date" json:"date"`
	Kind     Kind            `csv:"Kind" json:"kind"`
	Category string          `csv:"Category" json:"category"`
	Amount   decimal.Decimal `csv:"Amount" json:"amount"`
	Note     string          `csv:"Note" json:"note"`
}

// IsIncome returns true if the transaction adds to the balance.
func (t Transaction) IsIncome() bool {
	return t.Kind == KindIncome
}

// IsExpense returns true if the transaction subtracts from the balance.
func (t Transaction) IsExpense() bool {
	return t.Kind == KindExpense
}
