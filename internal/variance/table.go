// Package variance computes per-row and aggregate variance between a
// budgeted and an actual column of an arbitrary tabular input.
package variance

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/syafitri453/Finance-Apps/internal/apperror"
	"github.com/syafitri453/Finance-Apps/internal/currencyutils"
)

// Row is one record of a tabular input: column name to raw cell value.
type Row map[string]string

// Table is a schema-validated tabular input. The budget and actual columns
// are required and must be numeric in every row; the category column is
// optional ("" means the input carries no category).
type Table struct {
	BudgetCol   string
	ActualCol   string
	CategoryCol string

	rows    []Row
	budgets []decimal.Decimal
	actuals []decimal.Decimal
}

// NewTable validates the raw rows against the column selection and returns a
// Table ready for calculation. Validation failures surface as DataError at
// this boundary so type ambiguity never reaches the calculator.
func NewTable(rows []Row, budgetCol, actualCol, categoryCol string) (*Table, error) {
	if budgetCol == "" || actualCol == "" {
		return nil, &apperror.DataError{
			Subject: "tabular input",
			Row:     -1,
			Reason:  "budget and actual column names are required",
		}
	}

	t := &Table{
		BudgetCol:   budgetCol,
		ActualCol:   actualCol,
		CategoryCol: categoryCol,
		rows:        rows,
		budgets:     make([]decimal.Decimal, len(rows)),
		actuals:     make([]decimal.Decimal, len(rows)),
	}

	for i, row := range rows {
		budget, err := parseCell(row, budgetCol, i)
		if err != nil {
			return nil, err
		}
		actual, err := parseCell(row, actualCol, i)
		if err != nil {
			return nil, err
		}
		if categoryCol != "" {
			if _, ok := row[categoryCol]; !ok {
				return nil, &apperror.DataError{
					Subject: "tabular input",
					Row:     i,
					Reason:  fmt.Sprintf("missing required column '%s'", categoryCol),
				}
			}
		}
		t.budgets[i] = budget
		t.actuals[i] = actual
	}

	return t, nil
}

// Len returns the number of rows in the table.
func (t *Table) Len() int {
	return len(t.rows)
}

// Category returns the category value of a row, or "" when the table carries
// no category column.
func (t *Table) Category(i int) string {
	if t.CategoryCol == "" {
		return ""
	}
	return t.rows[i][t.CategoryCol]
}

func parseCell(row Row, col string, i int) (decimal.Decimal, error) {
	raw, ok := row[col]
	if !ok {
		return decimal.Zero, &apperror.DataError{
			Subject: "tabular input",
			Row:     i,
			Reason:  fmt.Sprintf("missing required column '%s'", col),
		}
	}
	// An empty cell is rejected here: ParseAmount treats empty as zero, which
	// must never slip through a required column.
	if strings.TrimSpace(raw) == "" {
		return decimal.Zero, &apperror.DataError{
			Subject: "tabular input",
			Row:     i,
			Reason:  fmt.Sprintf("required column '%s' is empty", col),
		}
	}
	value, err := currencyutils.ParseAmount(raw)
	if err != nil {
		return decimal.Zero, &apperror.DataError{
			Subject: "tabular input",
			Row:     i,
			Reason:  fmt.Sprintf("column '%s' is not numeric", col),
			Err:     err,
		}
	}
	return value, nil
}
