package variance

import (
	"github.com/shopspring/decimal"

	"github.com/syafitri453/Finance-Apps/internal/apperror"
)

var hundred = decimal.NewFromInt(100)

// VarianceRow is the derived output for one input row. Fields is a copy of
// the original row; the input is never mutated.
type VarianceRow struct {
	Fields      Row             `json:"fields"`
	Category    string          `json:"category,omitempty"`
	Budget      decimal.Decimal `json:"budget"`
	Actual      decimal.Decimal `json:"actual"`
	Variance    decimal.Decimal `json:"variance"`
	VariancePct decimal.Decimal `json:"variance_pct"`
}

// Stats holds the descriptive statistics of one numeric column.
type Stats struct {
	Min  decimal.Decimal `json:"min"`
	Max  decimal.Decimal `json:"max"`
	Mean decimal.Decimal `json:"mean"`
}

// Result is the derived variance table plus its aggregates.
type Result struct {
	Rows             []VarianceRow   `json:"rows"`
	TotalBudget      decimal.Decimal `json:"total_budget"`
	TotalActual      decimal.Decimal `json:"total_actual"`
	TotalVariance    decimal.Decimal `json:"total_variance"`
	TotalVariancePct decimal.Decimal `json:"total_variance_pct"`
	BudgetStats      Stats           `json:"budget_stats"`
	ActualStats      Stats           `json:"actual_stats"`
}

// Calculate derives one VarianceRow per input row and the aggregate totals.
// Variance is signed: positive means actual exceeded budget. A zero budget
// makes the percentage undefined, so any zero-budget row (or a zero budget
// sum) fails the whole calculation with DataError; there is no partial
// result and never a silent Inf or NaN.
func Calculate(table *Table) (*Result, error) {
	result := &Result{
		Rows:          make([]VarianceRow, 0, table.Len()),
		TotalBudget:   decimal.Zero,
		TotalActual:   decimal.Zero,
		TotalVariance: decimal.Zero,
	}

	for i := 0; i < table.Len(); i++ {
		budget := table.budgets[i]
		actual := table.actuals[i]

		if budget.IsZero() {
			return nil, &apperror.DataError{
				Subject: "variance",
				Row:     i,
				Reason:  "budget is zero, variance percentage is undefined",
			}
		}

		variance := actual.Sub(budget)
		row := VarianceRow{
			Fields:      copyRow(table.rows[i]),
			Category:    table.Category(i),
			Budget:      budget,
			Actual:      actual,
			Variance:    variance,
			VariancePct: variance.Div(budget).Mul(hundred),
		}

		result.Rows = append(result.Rows, row)
		result.TotalBudget = result.TotalBudget.Add(budget)
		result.TotalActual = result.TotalActual.Add(actual)
	}

	result.TotalVariance = result.TotalActual.Sub(result.TotalBudget)
	if table.Len() > 0 {
		if result.TotalBudget.IsZero() {
			return nil, &apperror.DataError{
				Subject: "variance",
				Row:     -1,
				Reason:  "budget sum is zero, total variance percentage is undefined",
			}
		}
		result.TotalVariancePct = result.TotalVariance.Div(result.TotalBudget).Mul(hundred)
		result.BudgetStats = describe(table.budgets)
		result.ActualStats = describe(table.actuals)
	}

	return result, nil
}

func copyRow(row Row) Row {
	out := make(Row, len(row))
	for k, v := range row {
		out[k] = v
	}
	return out
}

func describe(values []decimal.Decimal) Stats {
	stats := Stats{Min: values[0], Max: values[0]}
	sum := decimal.Zero
	for _, v := range values {
		if v.LessThan(stats.Min) {
			stats.Min = v
		}
		if v.GreaterThan(stats.Max) {
			stats.Max = v
		}
		sum = sum.Add(v)
	}
	stats.Mean = sum.Div(decimal.NewFromInt(int64(len(values))))
	return stats
}
